package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"agrishield-service/internal/http/middleware"
	"agrishield-service/internal/model"
	"agrishield-service/internal/repository"
	"agrishield-service/internal/service"
)

type Handler struct {
	reports     *service.ReportService
	records     *service.RecordService
	log         zerolog.Logger
	environment string
}

func NewHandler(reports *service.ReportService, records *service.RecordService, log zerolog.Logger, environment string) *Handler {
	return &Handler{reports: reports, records: records, log: log, environment: environment}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := r.Group("/api")
	api.Use(authMiddleware)

	api.GET("/reports", h.getReports)
	api.GET("/dashboard-stats", h.getDashboardStats)
	api.POST("/dashboard-stats/refresh", h.refreshDashboardStats)

	api.GET("/inspections", h.listInspections)
	api.POST("/inspections", h.createInspection)
	api.GET("/inspections/:id", h.getInspection)
	api.PUT("/inspections/:id", h.updateInspection)
	api.DELETE("/inspections/:id", h.deleteInspection)

	api.GET("/seizures", h.listSeizures)
	api.POST("/seizures", h.createSeizure)

	api.GET("/lab-samples", h.listLabSamples)
	api.POST("/lab-samples", h.createLabSample)
	api.GET("/lab-samples/:id", h.getLabSample)
	api.PUT("/lab-samples/:id", h.updateLabSample)
	api.DELETE("/lab-samples/:id", h.deleteLabSample)

	api.GET("/fir-cases", h.listFIRCases)
	api.POST("/fir-cases", h.createFIRCase)

	api.GET("/users", h.listUsers)
}

func (h *Handler) getReports(c *gin.Context) {
	reportType := model.ParseReportType(c.Query("type"))

	filter, err := parseReportFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	report, err := h.reports.BuildReport(c.Request.Context(), reportType, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) getDashboardStats(c *gin.Context) {
	period := 0
	if periodStr := strings.TrimSpace(c.Query("period")); periodStr != "" {
		parsed, err := strconv.Atoi(periodStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, errorResponse("invalid period"))
			return
		}
		period = parsed
	}

	stats, err := h.reports.DashboardStats(c.Request.Context(), period)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        stats,
		"generatedAt": time.Now().UTC().Format(time.RFC3339),
	})
}

// refreshDashboardStats recomputes the same payload on demand. No cache layer
// sits behind the stats yet, so refresh and get are equivalent.
func (h *Handler) refreshDashboardStats(c *gin.Context) {
	h.getDashboardStats(c)
}

func (h *Handler) listInspections(c *gin.Context) {
	opts, err := parseListOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	records, err := h.records.ListInspections(c.Request.Context(), opts)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) createInspection(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var in service.CreateInspectionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	record, err := h.records.CreateInspection(c.Request.Context(), principal, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *Handler) getInspection(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.records.GetInspection(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) updateInspection(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in service.UpdateInspectionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	record, err := h.records.UpdateInspection(c.Request.Context(), principal, id, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) deleteInspection(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.records.DeleteInspection(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) listSeizures(c *gin.Context) {
	opts, err := parseListOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	records, err := h.records.ListSeizures(c.Request.Context(), opts)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) createSeizure(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var in service.CreateSeizureInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	record, err := h.records.CreateSeizure(c.Request.Context(), principal, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *Handler) listLabSamples(c *gin.Context) {
	opts, err := parseListOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	records, err := h.records.ListLabSamples(c.Request.Context(), opts)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) createLabSample(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var in service.CreateLabSampleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	record, err := h.records.CreateLabSample(c.Request.Context(), principal, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *Handler) getLabSample(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.records.GetLabSample(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) updateLabSample(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var in service.UpdateLabSampleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	record, err := h.records.UpdateLabSample(c.Request.Context(), principal, id, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *Handler) deleteLabSample(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.records.DeleteLabSample(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) listFIRCases(c *gin.Context) {
	opts, err := parseListOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	records, err := h.records.ListFIRCases(c.Request.Context(), opts)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) createFIRCase(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var in service.CreateFIRCaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	record, err := h.records.CreateFIRCase(c.Request.Context(), principal, in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.records.ListUsers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// parseReportFilter reads the shared filter axes. Dates accept RFC3339 or
// plain YYYY-MM-DD; anything else is rejected rather than silently dropped.
// The auditId parameter is accepted for compatibility and ignored.
func parseReportFilter(c *gin.Context) (model.ReportFilter, error) {
	filter := model.ReportFilter{
		Officer:  strings.TrimSpace(c.Query("officer")),
		District: strings.TrimSpace(c.Query("district")),
		Keyword:  strings.TrimSpace(c.Query("keyword")),
	}

	if raw := strings.TrimSpace(c.Query("startDate")); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return model.ReportFilter{}, errors.New("invalid startDate")
		}
		filter.StartDate = &parsed
	}
	if raw := strings.TrimSpace(c.Query("endDate")); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return model.ReportFilter{}, errors.New("invalid endDate")
		}
		filter.EndDate = &parsed
	}

	return filter, nil
}

func parseDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", raw)
}

func parseListOptions(c *gin.Context) (repository.ListOptions, error) {
	opts := repository.ListOptions{
		Status: strings.TrimSpace(c.Query("status")),
	}
	if raw := strings.TrimSpace(c.Query("userId")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return repository.ListOptions{}, errors.New("invalid userId")
		}
		opts.UserID = &id
	}
	return opts, nil
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		if h.environment != "production" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}
