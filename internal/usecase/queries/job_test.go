//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"firm-digest/internal/domain/job"
	"firm-digest/internal/infra"
	"firm-digest/internal/pkg/errs"
	"firm-digest/internal/usecase/queries"
	"firm-digest/tests/common/builder"
	queriesmock "firm-digest/tests/mock/queries"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var policy = job.RetryPolicy{MaxAttempts: 5, Backoff: 10 * time.Minute}

func newJobQueries(t *testing.T) (*queriesmock.MockJobReadStore, queries.JobQueries) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockJobReadStore(ctrl)
	return store, queries.NewJobQueries(store, policy)
}

func TestJobQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	view := builder.NewJobBuilder().BuildView()

	testCases := []struct {
		name    string
		setup   func(*queriesmock.MockJobReadStore)
		want    *queries.JobView
		errIs   error
		wantErr bool
	}{
		{
			name: "success: returns the view",
			setup: func(m *queriesmock.MockJobReadStore) {
				m.EXPECT().FindByID(ctx, view.ID).Return(view, nil)
			},
			want: view,
		},
		{
			name: "error: not found maps to ErrJobNotFound",
			setup: func(m *queriesmock.MockJobReadStore) {
				m.EXPECT().FindByID(ctx, view.ID).
					Return(nil, infra.WrapRepoErr("notification job not found", errors.New("no rows"), infra.KindNotFound))
			},
			errIs: errs.ErrJobNotFound,
		},
		{
			name: "error: database failure passes through",
			setup: func(m *queriesmock.MockJobReadStore) {
				m.EXPECT().FindByID(ctx, view.ID).Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, q := newJobQueries(t)
			tc.setup(store)

			got, err := q.GetByID(ctx, view.ID)

			switch {
			case tc.errIs != nil:
				require.ErrorIs(t, err, tc.errIs)
			case tc.wantErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, errs.ErrJobNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestJobQueries_ListByFirmAndDate(t *testing.T) {
	ctx := context.Background()
	firmID := uuid.New()

	t.Run("success: parses the date", func(t *testing.T) {
		store, q := newJobQueries(t)
		views := []*queries.JobView{builder.NewJobBuilder().BuildView()}
		store.EXPECT().ListByFirmAndDate(ctx, firmID, civil.Date{Year: 2025, Month: time.January, Day: 15}).Return(views, nil)

		got, err := q.ListByFirmAndDate(ctx, firmID, "2025-01-15")

		require.NoError(t, err)
		assert.Equal(t, views, got)
	})

	for _, bad := range []string{"", "15-01-2025", "2025-02-30", "2025-1-5x"} {
		t.Run("error: invalid date "+bad, func(t *testing.T) {
			_, q := newJobQueries(t)

			_, err := q.ListByFirmAndDate(ctx, firmID, bad)

			require.ErrorIs(t, err, errs.ErrInvalidDate)
		})
	}
}

func TestJobQueries_ListFailed(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "success: default limit", limit: 0, wantLimit: 50},
		{name: "success: explicit limit", limit: 20, wantLimit: 20},
		{name: "success: limit is capped", limit: 10_000, wantLimit: 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, q := newJobQueries(t)
			store.EXPECT().ListTerminalFailures(ctx, policy.MaxAttempts, tc.wantLimit).Return([]*queries.JobView{}, nil)

			got, err := q.ListFailed(ctx, tc.limit)

			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestJobQueries_StatusCounts(t *testing.T) {
	ctx := context.Background()
	firmID := uuid.New()
	date := civil.Date{Year: 2025, Month: time.January, Day: 15}

	t.Run("success: fills every status", func(t *testing.T) {
		store, q := newJobQueries(t)
		store.EXPECT().CountByStatus(ctx, firmID, date).
			Return(map[job.Status]int{job.StatusSent: 3, job.StatusFailed: 1}, nil)

		got, err := q.StatusCounts(ctx, firmID, "2025-01-15")

		require.NoError(t, err)
		assert.Equal(t, &queries.FirmDayStatus{
			FirmID: firmID,
			Date:   "2025-01-15",
			Counts: map[string]int{"pending": 0, "processing": 0, "sent": 3, "failed": 1},
			Total:  4,
		}, got)
	})

	t.Run("error: store failure", func(t *testing.T) {
		store, q := newJobQueries(t)
		store.EXPECT().CountByStatus(ctx, firmID, date).Return(nil, errors.New("timeout"))

		_, err := q.StatusCounts(ctx, firmID, "2025-01-15")

		require.Error(t, err)
	})

	t.Run("error: invalid date", func(t *testing.T) {
		_, q := newJobQueries(t)

		_, err := q.StatusCounts(ctx, firmID, "tomorrow")

		require.ErrorIs(t, err, errs.ErrInvalidDate)
	})
}
