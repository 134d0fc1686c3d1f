package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-study-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/dedup"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/reschedule"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/review"
	"github.com/KasumiMercury/primind-study-scheduler/internal/service/runlog"
)

type ScheduleHandler struct {
	rescheduleService *reschedule.Service
	reviewService     *review.Service
	dedupService      *dedup.Service
	plans             domain.StudyPlanReader
	runLog            *runlog.Log
}

func NewScheduleHandler(
	rescheduleService *reschedule.Service,
	reviewService *review.Service,
	dedupService *dedup.Service,
	plans domain.StudyPlanReader,
	runLog *runlog.Log,
) *ScheduleHandler {
	return &ScheduleHandler{
		rescheduleService: rescheduleService,
		reviewService:     reviewService,
		dedupService:      dedupService,
		plans:             plans,
		runLog:            runLog,
	}
}

func (h *ScheduleHandler) RegisterRoutes(r gin.IRouter) {
	users := r.Group("/users/:userID")
	users.POST("/plan/reschedule-missed", h.HandleRescheduleMissed)
	users.POST("/plan/cleanup-duplicates", h.HandleCleanupDuplicates)
	users.POST("/review-sessions", h.HandleScheduleReview)
	users.GET("/plan/runs/:operation", h.HandleGetLastRun)
}

// requestTime reads the optional ?now= override used for replaying runs.
func requestTime(c *gin.Context) (time.Time, bool) {
	nowStr := c.Query("now")
	if nowStr == "" {
		return time.Now().UTC(), true
	}

	parsed, err := time.Parse(time.RFC3339, nowStr)
	if err != nil {
		respondError(c, http.StatusBadRequest, errorKindValidation, "invalid now time format, expected RFC3339")
		return time.Time{}, false
	}
	slog.InfoContext(c.Request.Context(), "using virtual time",
		slog.Time("virtual_now", parsed),
	)
	return parsed, true
}

func (h *ScheduleHandler) HandleRescheduleMissed(c *gin.Context) {
	now, ok := requestTime(c)
	if !ok {
		return
	}

	resp, err := h.rescheduleService.Reschedule(c.Request.Context(), c.Param("userID"), now)
	if err != nil {
		respondServiceError(c, "reschedule missed tasks", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ScheduleHandler) HandleCleanupDuplicates(c *gin.Context) {
	now, ok := requestTime(c)
	if !ok {
		return
	}

	dryRun := false
	if raw := c.Query("dryRun"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, errorKindValidation, "dryRun must be a boolean")
			return
		}
		dryRun = parsed
	}

	resp, err := h.dedupService.Cleanup(c.Request.Context(), c.Param("userID"), now, dryRun)
	if err != nil {
		respondServiceError(c, "cleanup duplicate tasks", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ScheduleHandler) HandleScheduleReview(c *gin.Context) {
	now, ok := requestTime(c)
	if !ok {
		return
	}

	var req review.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errorKindValidation, "invalid request body")
		return
	}

	resp, err := h.reviewService.ScheduleReview(c.Request.Context(), c.Param("userID"), req, now)
	if err != nil {
		respondServiceError(c, "schedule review session", err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ScheduleHandler) HandleGetLastRun(c *gin.Context) {
	ctx := c.Request.Context()

	op := domain.Operation(c.Param("operation"))
	if !op.Valid() {
		respondError(c, http.StatusBadRequest, errorKindValidation, "unknown operation "+strconv.Quote(string(op)))
		return
	}

	plan, err := h.plans.FindByUser(ctx, c.Param("userID"))
	if err != nil {
		respondServiceError(c, "get last run", err)
		return
	}

	summary, err := h.runLog.Last(ctx, plan.ID, op)
	if err != nil {
		respondServiceError(c, "get last run", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
