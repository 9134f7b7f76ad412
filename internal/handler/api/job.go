package api

import (
	"errors"
	"net/http"

	reqdto "firm-digest/internal/handler/dto/request"
	resdto "firm-digest/internal/handler/dto/response"
	"firm-digest/internal/handler/httperr"
	"firm-digest/internal/pkg/errs"
	"firm-digest/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobHandler struct {
	q queries.JobQueries
}

func NewJobHandler(q queries.JobQueries) *JobHandler {
	return &JobHandler{q: q}
}

// @Summary List jobs for a firm and date
// @Description List digest jobs scheduled for one firm on one local date
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param firm_id query string true "Firm ID"
// @Param date query string true "Local date (YYYY-MM-DD)"
// @Success 200 {object} resdto.JobListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Router /admin/jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var query reqdto.ListJobsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	firmID, err := uuid.Parse(query.FirmID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid firm id", nil)
		return
	}
	views, err := h.q.ListByFirmAndDate(c.Request.Context(), firmID, query.Date)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobViews(views))
}

// @Summary Get job
// @Description Get one digest job by ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.JobResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobView(view))
}

// @Summary List terminally failed jobs
// @Description List failed jobs that will not be retried, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50, max 500)"
// @Success 200 {object} resdto.JobListResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/jobs/failed [get]
func (h *JobHandler) ListFailed(c *gin.Context) {
	var query reqdto.ListFailedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.ListFailed(c.Request.Context(), query.Limit)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromJobViews(views))
}

// @Summary Firm delivery status
// @Description Count a firm's digest jobs by status for one local date
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Firm ID"
// @Param date query string true "Local date (YYYY-MM-DD)"
// @Success 200 {object} resdto.FirmStatusResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/firms/{id}/status [get]
func (h *JobHandler) FirmStatus(c *gin.Context) {
	firmID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid firm id", nil)
		return
	}
	var query reqdto.FirmStatusQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	status, err := h.q.StatusCounts(c.Request.Context(), firmID, query.Date)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFirmDayStatus(status))
}

func abortQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
	case errors.Is(err, errs.ErrJobNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Job not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
