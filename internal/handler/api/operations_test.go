//go:build unit

package api_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"firm-digest/internal/handler/api"
	resdto "firm-digest/internal/handler/dto/response"
	"firm-digest/internal/pkg/clock"
	"firm-digest/internal/usecase/commands"
	"firm-digest/tests/common/httptest"
	"firm-digest/tests/common/testutil"
	commandsmock "firm-digest/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OperationsHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockScheduling *commandsmock.MockSchedulingCommands
	mockDelivery   *commandsmock.MockDeliveryCommands
	now            time.Time
}

func (s *OperationsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockScheduling = commandsmock.NewMockSchedulingCommands(s.mockCtrl)
	s.mockDelivery = commandsmock.NewMockDeliveryCommands(s.mockCtrl)
	s.now = time.Date(2025, 1, 15, 13, 5, 0, 0, time.UTC)
	handler := api.NewOperationsHandler(s.mockScheduling, s.mockDelivery, clock.NewMockClock(s.now), slog.New(slog.DiscardHandler))

	s.router.POST("/admin/scheduler/run", handler.RunSchedulingPass)
	s.router.POST("/admin/worker/run", handler.RunWorkerBatch)
}

func (s *OperationsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOperationsHandlerSuite(t *testing.T) {
	suite.Run(t, new(OperationsHandlerTestSuite))
}

func (s *OperationsHandlerTestSuite) TestRunSchedulingPass() {
	url := "/admin/scheduler/run"
	result := &commands.PassResult{FirmsScanned: 3, FirmsInWindow: 1, JobsCreated: 4, JobsExisting: 1}

	s.Run("success: empty body evaluates now", func() {
		s.mockScheduling.EXPECT().RunSchedulingPass(gomock.Any(), s.now).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.PassResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.PassResultResponse{FirmsScanned: 3, FirmsInWindow: 1, JobsCreated: 4, JobsExisting: 1}, body)
	})

	s.Run("success: explicit instant", func() {
		at := time.Date(2025, 1, 15, 13, 0, 0, 0, time.UTC)
		s.mockScheduling.EXPECT().RunSchedulingPass(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, got time.Time) (*commands.PassResult, error) {
				s.True(at.Equal(got))
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"at": "2025-01-15T13:00:00Z"}, "")

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 on malformed instant", func() {
		reqBody := testutil.DtoMap(s.T(), map[string]any{"at": "2025-01-15T13:00:00Z"}, testutil.Field("at", "tonight"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 500 when the pass cannot start", func() {
		s.mockScheduling.EXPECT().RunSchedulingPass(gomock.Any(), s.now).Return(nil, errors.New("database unavailable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Scheduling pass failed")
	})
}

func (s *OperationsHandlerTestSuite) TestRunWorkerBatch() {
	url := "/admin/worker/run"

	s.Run("success: returns batch counters", func() {
		s.mockDelivery.EXPECT().RunWorkerBatch(gomock.Any()).
			Return(&commands.BatchResult{Listed: 2, Claimed: 2, Sent: 1, Failed: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var body resdto.BatchResultResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Claimed)
		s.Equal(1, body.Sent)
		s.Equal(1, body.Failed)
	})

	s.Run("error: 500 when listing fails", func() {
		s.mockDelivery.EXPECT().RunWorkerBatch(gomock.Any()).Return(&commands.BatchResult{}, errors.New("database unavailable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Delivery batch failed")
	})
}
