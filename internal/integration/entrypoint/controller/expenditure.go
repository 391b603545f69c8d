package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/expenditure"
	"github.com/0Hoxy/fixedExpenses/internal/application/usecase/status"
	domainerror "github.com/0Hoxy/fixedExpenses/internal/domain/error"
	"github.com/0Hoxy/fixedExpenses/internal/domain/valueobject"
	"github.com/0Hoxy/fixedExpenses/internal/integration/entrypoint/dto"
)

// ExpenditureController handles expenditure endpoints.
type ExpenditureController struct {
	createUseCase        *expenditure.CreateExpenditureUseCase
	listUseCase          *expenditure.ListExpendituresUseCase
	getUseCase           *expenditure.GetExpenditureUseCase
	updateUseCase        *expenditure.UpdateExpenditureUseCase
	deleteUseCase        *expenditure.DeleteExpenditureUseCase
	markPaymentUseCase   *expenditure.MarkPaymentUseCase
	setStatusUseCase     *status.SetStatusUseCase
	resolveStatusUseCase *status.ResolveStatusUseCase
}

// NewExpenditureController creates a new expenditure controller instance.
func NewExpenditureController(
	createUseCase *expenditure.CreateExpenditureUseCase,
	listUseCase *expenditure.ListExpendituresUseCase,
	getUseCase *expenditure.GetExpenditureUseCase,
	updateUseCase *expenditure.UpdateExpenditureUseCase,
	deleteUseCase *expenditure.DeleteExpenditureUseCase,
	markPaymentUseCase *expenditure.MarkPaymentUseCase,
	setStatusUseCase *status.SetStatusUseCase,
	resolveStatusUseCase *status.ResolveStatusUseCase,
) *ExpenditureController {
	return &ExpenditureController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		markPaymentUseCase:   markPaymentUseCase,
		setStatusUseCase:     setStatusUseCase,
		resolveStatusUseCase: resolveStatusUseCase,
	}
}

// Create handles POST /expenditures requests.
func (c *ExpenditureController) Create(ctx *gin.Context) {
	var req dto.CreateExpenditureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			string(domainerror.ErrCodeMissingDetailFields),
			"Invalid request body",
		))
		return
	}

	input := expenditure.CreateExpenditureInput{
		ProfileID:       req.ProfileID,
		CategoryID:      req.CategoryID,
		PaymentMethodID: req.PaymentMethodID,
		ItemName:        req.ItemName,
		PaymentDay:      req.PaymentDay,
		PaymentCycle:    req.PaymentCycle,
		Type:            req.Type,
		Memo:            req.Memo,
		Detail:          req.Detail.ToDetailInput(),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenditureError(ctx, err)
		return
	}

	response := dto.ToExpenditureResponse(output.Expenditure)
	response.Detail = dto.ToDetailResponse(output.Detail)
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(response))
}

// List handles GET /expenditures requests.
func (c *ExpenditureController) List(ctx *gin.Context) {
	profileID, err := uuid.Parse(ctx.Query("profileId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			string(domainerror.ErrCodeProfileNotFound),
			"profileId query parameter is required",
		))
		return
	}

	input := expenditure.ListExpendituresInput{
		ProfileID: profileID,
		Search:    ctx.Query("search"),
		Month:     ctx.Query("month"),
		Paused:    ctx.Query("paused") == "true",
	}
	if categoryIDStr := ctx.Query("categoryId"); categoryIDStr != "" {
		categoryID, err := uuid.Parse(categoryIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				string(domainerror.ErrCodeCategoryNotFound),
				"Invalid categoryId format",
			))
			return
		}
		input.CategoryID = &categoryID
	}
	if pageStr := ctx.Query("page"); pageStr != "" {
		input.Page, _ = strconv.Atoi(pageStr)
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		input.Limit, _ = strconv.Atoi(limitStr)
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenditureError(ctx, err)
		return
	}

	responses := make([]dto.ExpenditureResponse, len(output.Expenditures))
	for i, item := range output.Expenditures {
		responses[i] = dto.ToExpenditureResponse(item.Expenditure)
		if item.Category != nil {
			responses[i].CategoryName = item.Category.Name
		}
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ExpenditureListResponse{
		Expenditures: responses,
		Pagination: dto.PaginationResponse{
			CurrentPage: output.Pagination.CurrentPage,
			TotalPages:  output.Pagination.TotalPages,
			TotalCount:  output.Pagination.TotalCount,
			Limit:       output.Pagination.Limit,
			HasNext:     output.Pagination.HasNext,
			HasPrev:     output.Pagination.HasPrev,
		},
	}))
}

// Get handles GET /expenditures/:id requests.
func (c *ExpenditureController) Get(ctx *gin.Context) {
	expenditureID, ok := c.parseExpenditureID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expenditure.GetExpenditureInput{
		ExpenditureID: expenditureID,
	})
	if err != nil {
		c.handleExpenditureError(ctx, err)
		return
	}

	response := dto.ToExpenditureResponse(output.Expenditure)
	response.Detail = dto.ToDetailResponse(output.Detail)
	if output.Category != nil {
		response.CategoryName = output.Category.Name
	}
	if output.LatestStatus != nil {
		response.CurrentStatus = string(output.LatestStatus.Status)
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// Update handles PATCH /expenditures/:id requests.
func (c *ExpenditureController) Update(ctx *gin.Context) {
	expenditureID, ok := c.parseExpenditureID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateExpenditureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			string(domainerror.ErrCodeMissingDetailFields),
			"Invalid request body",
		))
		return
	}

	input := expenditure.UpdateExpenditureInput{
		ExpenditureID:   expenditureID,
		Type:            req.Type,
		CategoryID:      req.CategoryID,
		PaymentMethodID: req.PaymentMethodID,
		ItemName:        req.ItemName,
		PaymentDay:      req.PaymentDay,
		PaymentCycle:    req.PaymentCycle,
		Memo:            req.Memo,
	}
	if req.Detail != nil {
		detail := req.Detail.ToDetailInput()
		input.Detail = &detail
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenditureError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToExpenditureResponse(output.Expenditure)))
}

// Delete handles DELETE /expenditures/:id requests.
func (c *ExpenditureController) Delete(ctx *gin.Context) {
	expenditureID, ok := c.parseExpenditureID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expenditure.DeleteExpenditureInput{
		ExpenditureID: expenditureID,
	}); err != nil {
		c.handleExpenditureError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MarkPayment handles PUT /expenditures/:id/payments/:month requests.
func (c *ExpenditureController) MarkPayment(ctx *gin.Context) {
	expenditureID, ok := c.parseExpenditureID(ctx)
	if !ok {
		return
	}

	// The body is optional; an empty one means "mark paid now".
	var req dto.PaymentRequest
	_ = ctx.ShouldBindJSON(&req)

	output, err := c.markPaymentUseCase.Execute(ctx.Request.Context(), expenditure.MarkPaymentInput{
		ExpenditureID: expenditureID,
		Month:         ctx.Param("month"),
		IsPaid:        req.IsPaid,
		PaidTimestamp: req.PaidTimestamp,
	})
	if err != nil {
		c.handleExpenditureError(ctx, err)
		return
	}

	response := dto.PaymentResponse{
		ExpenditureID: output.Record.ExpenditureID.String(),
		PaymentMonth:  output.Record.PaymentMonth.Format("2006-01"),
		IsPaid:        output.Record.IsPaid,
		PaidTimestamp: output.Record.PaidTimestamp,
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// SetStatus handles PUT /expenditures/:id/statuses/:effectiveMonth requests.
func (c *ExpenditureController) SetStatus(ctx *gin.Context) {
	expenditureID, ok := c.parseExpenditureID(ctx)
	if !ok {
		return
	}

	var req dto.StatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			string(domainerror.ErrCodeInvalidStatusValue),
			"status field is required",
		))
		return
	}

	output, err := c.setStatusUseCase.Execute(ctx.Request.Context(), status.SetStatusInput{
		ExpenditureID:  expenditureID,
		EffectiveMonth: ctx.Param("effectiveMonth"),
		Status:         req.Status,
	})
	if err != nil {
		c.handleExpenditureError(ctx, err)
		return
	}

	response := dto.StatusResponse{
		ExpenditureID:  output.Entry.ExpenditureID.String(),
		Status:         string(output.Entry.Status),
		EffectiveMonth: output.Entry.EffectiveMonth.Format("2006-01"),
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetStatus handles GET /expenditures/:id/statuses/:month requests. It
// answers what the expenditure's status was in the given month.
func (c *ExpenditureController) GetStatus(ctx *gin.Context) {
	expenditureID, ok := c.parseExpenditureID(ctx)
	if !ok {
		return
	}

	month, err := valueobject.ParseMonth(ctx.Param("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			string(domainerror.ErrCodeInvalidMonthFormat),
			"month must be in YYYY-MM format",
		))
		return
	}

	output, err := c.resolveStatusUseCase.Execute(ctx.Request.Context(), status.ResolveStatusInput{
		ExpenditureID: expenditureID,
		TargetMonth:   month,
	})
	if err != nil {
		c.handleExpenditureError(ctx, err)
		return
	}

	response := dto.ResolutionResponse{
		ExpenditureID: expenditureID.String(),
		Month:         month.String(),
		Resolution:    string(output.Resolution),
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

func (c *ExpenditureController) parseExpenditureID(ctx *gin.Context) (uuid.UUID, bool) {
	expenditureID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			string(domainerror.ErrCodeExpenditureNotFound),
			"Invalid expenditure ID format",
		))
		return uuid.Nil, false
	}
	return expenditureID, true
}

// handleExpenditureError maps expenditure errors to HTTP responses.
func (c *ExpenditureController) handleExpenditureError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenditureError
	if errors.As(err, &expErr) {
		ctx.JSON(statusCodeForExpenditureError(expErr.Code), dto.NewErrorResponse(
			string(expErr.Code),
			expErr.Message,
		))
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
		string(domainerror.ErrCodeExpenditureInternalError),
		"An internal error occurred",
	))
}

// statusCodeForExpenditureError maps expenditure error codes to HTTP status codes.
func statusCodeForExpenditureError(code domainerror.ExpenditureErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenditureNotFound,
		domainerror.ErrCodeProfileNotFound,
		domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodePaymentMethodNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenditureType,
		domainerror.ErrCodeInvalidPaymentDay,
		domainerror.ErrCodeMissingDetailFields,
		domainerror.ErrCodeDetailTypeMismatch,
		domainerror.ErrCodeInvalidMonthFormat,
		domainerror.ErrCodeInvalidStatusValue,
		domainerror.ErrCodeExpenditureTypeImmutable,
		domainerror.ErrCodeInvalidPagination:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
