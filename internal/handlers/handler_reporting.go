package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/bizdash/internal/core/domain"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/middleware"
	"github.com/SscSPs/bizdash/internal/report"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the dashboard and monthly report requests.
type reportingHandler struct {
	dashboard portssvc.DashboardSvc
	now       func() time.Time
}

// RegisterReportingRoutes registers the dashboard and report routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, dashboard portssvc.DashboardSvc) {
	h := &reportingHandler{dashboard: dashboard, now: time.Now}

	rg.GET("/dashboard", h.getDashboard)
	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.getMonthlyReport)
		reports.GET("/monthly.pdf", h.getMonthlyReportPDF)
	}
}

// getDashboard godoc
// @Summary Dashboard figures
// @Description Daily and monthly profit, partner settlement, low stock and pending leaves.
// @Tags dashboard
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), today when omitted"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Data is still loading"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err)
		return
	}
	day := h.now()
	if params.Date != "" {
		parsed, err := domain.ParseDay(params.Date)
		if err != nil {
			respondError(c, err, "parse date")
			return
		}
		day = parsed
	}
	summary, err := h.dashboard.DashboardSummary(c.Request.Context(), day)
	if err != nil {
		respondError(c, err, "build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}

func (h *reportingHandler) reportMonth(c *gin.Context) (domain.Month, bool) {
	month, ok := monthFilter(c)
	if !ok {
		return domain.Month{}, false
	}
	if month == nil {
		return domain.MonthOf(h.now()), true
	}
	return *month, true
}

// getMonthlyReport godoc
// @Summary Monthly report
// @Tags reports
// @Produce json
// @Param month query string false "Month (YYYY-MM), current month when omitted"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlyReport(c *gin.Context) {
	month, ok := h.reportMonth(c)
	if !ok {
		return
	}
	rep, err := h.dashboard.MonthlyReport(c.Request.Context(), month)
	if err != nil {
		respondError(c, err, "generate monthly report")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlyReportResponse(rep))
}

// getMonthlyReportPDF godoc
// @Summary Monthly report as PDF
// @Tags reports
// @Produce application/pdf
// @Param month query string false "Month (YYYY-MM), current month when omitted"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly.pdf [get]
func (h *reportingHandler) getMonthlyReportPDF(c *gin.Context) {
	month, ok := h.reportMonth(c)
	if !ok {
		return
	}
	rep, err := h.dashboard.MonthlyReport(c.Request.Context(), month)
	if err != nil {
		respondError(c, err, "generate monthly report")
		return
	}
	pdf, err := report.MonthlyPDF(rep, h.now())
	if err != nil {
		respondError(c, err, "render monthly report")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Monthly report exported", slog.String("month", rep.Month), slog.Int("bytes", len(pdf)))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.pdf"`, rep.Month))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
