//go:build unit

package worker_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"firm-digest/internal/pkg/clock"
	"firm-digest/internal/usecase/commands"
	"firm-digest/internal/worker"
	commandsmock "firm-digest/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var discard = slog.New(slog.DiscardHandler)

func TestPoller(t *testing.T) {
	t.Run("success: full batches drain before waiting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		delivery := commandsmock.NewMockDeliveryCommands(ctrl)
		done := make(chan struct{})

		gomock.InOrder(
			delivery.EXPECT().RunWorkerBatch(gomock.Any()).Return(&commands.BatchResult{Listed: 10, Claimed: 10, Sent: 10}, nil),
			delivery.EXPECT().RunWorkerBatch(gomock.Any()).Return(&commands.BatchResult{Listed: 10, Claimed: 9, Sent: 9, Skipped: 1}, nil),
			delivery.EXPECT().RunWorkerBatch(gomock.Any()).DoAndReturn(func(context.Context) (*commands.BatchResult, error) {
				close(done)
				return &commands.BatchResult{Listed: 3, Claimed: 3, Sent: 3}, nil
			}),
		)

		p := worker.NewPoller(delivery, time.Hour, 10, discard)
		p.Start()
		assert.True(t, p.IsRunning())

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("poller did not drain the backlog")
		}
		require.NoError(t, p.Stop(context.Background()))
		assert.False(t, p.IsRunning())
	})

	t.Run("success: batch error waits for the next tick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		delivery := commandsmock.NewMockDeliveryCommands(ctrl)
		done := make(chan struct{})

		delivery.EXPECT().RunWorkerBatch(gomock.Any()).DoAndReturn(func(context.Context) (*commands.BatchResult, error) {
			close(done)
			return &commands.BatchResult{}, errors.New("database unavailable")
		}).Times(1)

		p := worker.NewPoller(delivery, time.Hour, 10, discard)
		p.Start()
		<-done
		require.NoError(t, p.Stop(context.Background()))
	})

	t.Run("success: stop waits for the in-flight batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		delivery := commandsmock.NewMockDeliveryCommands(ctrl)
		started := make(chan struct{})
		finished := make(chan struct{})

		delivery.EXPECT().RunWorkerBatch(gomock.Any()).DoAndReturn(func(ctx context.Context) (*commands.BatchResult, error) {
			close(started)
			<-ctx.Done()
			time.Sleep(20 * time.Millisecond)
			close(finished)
			return &commands.BatchResult{Listed: 1, Claimed: 1, Sent: 1}, nil
		}).Times(1)

		p := worker.NewPoller(delivery, time.Hour, 10, discard)
		p.Start()
		<-started

		require.NoError(t, p.Stop(context.Background()))
		select {
		case <-finished:
		default:
			t.Fatal("stop returned before the batch finished")
		}
	})

	t.Run("error: stop gives up when its context ends", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		delivery := commandsmock.NewMockDeliveryCommands(ctrl)
		started := make(chan struct{})
		release := make(chan struct{})

		delivery.EXPECT().RunWorkerBatch(gomock.Any()).DoAndReturn(func(context.Context) (*commands.BatchResult, error) {
			close(started)
			<-release
			return &commands.BatchResult{}, nil
		}).Times(1)

		p := worker.NewPoller(delivery, time.Hour, 10, discard)
		p.Start()
		<-started

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		require.ErrorIs(t, p.Stop(ctx), context.DeadlineExceeded)
		close(release)
	})
}

func TestScheduler(t *testing.T) {
	now := time.Date(2025, 1, 15, 13, 0, 0, 0, time.UTC)

	t.Run("success: runs a pass immediately on start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scheduling := commandsmock.NewMockSchedulingCommands(ctrl)
		done := make(chan struct{})

		started := time.Now().Truncate(time.Second)

		scheduling.EXPECT().RunSchedulingPass(gomock.Any(), started).DoAndReturn(func(context.Context, time.Time) (*commands.PassResult, error) {
			close(done)
			return &commands.PassResult{}, nil
		}).Times(1)

		// The next tick is computed against the wall clock; a yearly cron keeps
		// it out of the test.
		s := worker.NewScheduler(scheduling, "0 0 1 1 *", clock.NewMockClock(started), discard)
		s.Start()
		<-done
		require.NoError(t, s.Stop(context.Background()))
	})

	t.Run("success: run once applies a deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		scheduling := commandsmock.NewMockSchedulingCommands(ctrl)
		want := &commands.PassResult{FirmsScanned: 2}

		scheduling.EXPECT().RunSchedulingPass(gomock.Any(), now).DoAndReturn(func(ctx context.Context, _ time.Time) (*commands.PassResult, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return want, nil
		})

		s := worker.NewScheduler(scheduling, "*/15 * * * *", clock.NewMockClock(now), discard)
		got, err := s.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("success: stop without start", func(t *testing.T) {
		s := worker.NewScheduler(nil, "*/15 * * * *", clock.NewMockClock(now), discard)
		require.NoError(t, s.Stop(context.Background()))
	})
}
