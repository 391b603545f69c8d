package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/dashboard"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
	"github.com/0Hoxy/fixedExpenses/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard and report endpoints.
type DashboardController struct {
	dashboardUseCase *dashboard.GetDashboardUseCase
	reportUseCase    *dashboard.GetMonthlyReportUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	dashboardUseCase *dashboard.GetDashboardUseCase,
	reportUseCase *dashboard.GetMonthlyReportUseCase,
) *DashboardController {
	return &DashboardController{
		dashboardUseCase: dashboardUseCase,
		reportUseCase:    reportUseCase,
	}
}

// GetDashboard handles GET /profiles/:profileId/dashboard requests.
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	profileID, ok := parseProfileID(ctx)
	if !ok {
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{
		ProfileID: profileID,
		Month:     ctx.Query("month"),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToDashboardResponse(output)))
}

// GetMonthlyReport handles GET /profiles/:profileId/reports/monthly requests.
func (c *DashboardController) GetMonthlyReport(ctx *gin.Context) {
	profileID, ok := parseProfileID(ctx)
	if !ok {
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthlyReportInput{
		ProfileID: profileID,
		FromMonth: ctx.Query("from"),
		ToMonth:   ctx.Query("to"),
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToMonthlyReportResponse(output)))
}

func parseProfileID(ctx *gin.Context) (uuid.UUID, bool) {
	profileID, err := uuid.Parse(ctx.Param("profileId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			string(domainerror.ErrCodeProfileNotFound),
			"Invalid profile ID format",
		))
		return uuid.Nil, false
	}
	return profileID, true
}

// handleDashboardError maps dashboard and report errors to HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := http.StatusBadRequest
		if reportErr.Code == domainerror.ErrCodeReportProfileNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.NewErrorResponse(string(reportErr.Code), reportErr.Message))
		return
	}

	var expErr *domainerror.ExpenditureError
	if errors.As(err, &expErr) {
		ctx.JSON(statusCodeForExpenditureError(expErr.Code), dto.NewErrorResponse(
			string(expErr.Code),
			expErr.Message,
		))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		string(domainerror.ErrCodeReportInternalError),
		"An internal error occurred",
	))
}
