package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	reqdto "firm-digest/internal/handler/dto/request"
	resdto "firm-digest/internal/handler/dto/response"
	"firm-digest/internal/handler/httperr"
	"firm-digest/internal/handler/middleware"
	"firm-digest/internal/pkg/clock"
	"firm-digest/internal/pkg/ptr"
	"firm-digest/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// OperationsHandler lets an operator trigger the pipeline by hand. Both
// operations are safe to repeat.
type OperationsHandler struct {
	scheduling commands.SchedulingCommands
	delivery   commands.DeliveryCommands
	clock      clock.Clock
	logger     *slog.Logger
}

func NewOperationsHandler(scheduling commands.SchedulingCommands, delivery commands.DeliveryCommands, clk clock.Clock, logger *slog.Logger) *OperationsHandler {
	return &OperationsHandler{
		scheduling: scheduling,
		delivery:   delivery,
		clock:      clk,
		logger:     logger,
	}
}

// @Summary Run a scheduling pass
// @Description Enqueue digest jobs for firms inside the window at the given instant (default now)
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RunPassRequest false "Evaluation instant"
// @Success 200 {object} resdto.PassResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/scheduler/run [post]
func (h *OperationsHandler) RunSchedulingPass(c *gin.Context) {
	var req reqdto.RunPassRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	at := ptr.Or(req.At, h.clock.Now())

	operator, _ := middleware.GetOperator(c)
	h.logger.Info("manual scheduling pass requested", "operator", operator, "at", at)

	res, err := h.scheduling.RunSchedulingPass(c.Request.Context(), at)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Scheduling pass failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPassResult(res))
}

// @Summary Run a delivery batch
// @Description Claim and deliver one batch of due digest jobs
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BatchResultResponse
// @Failure 500 {object} httperr.Response
// @Router /admin/worker/run [post]
func (h *OperationsHandler) RunWorkerBatch(c *gin.Context) {
	operator, _ := middleware.GetOperator(c)
	h.logger.Info("manual delivery batch requested", "operator", operator)

	res, err := h.delivery.RunWorkerBatch(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delivery batch failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBatchResult(res))
}
