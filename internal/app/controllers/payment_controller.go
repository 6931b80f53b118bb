package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjun/hostelmate/internal/app/models/dto"
	"github.com/arjun/hostelmate/internal/app/repositories"
	"github.com/arjun/hostelmate/internal/app/services"
	"github.com/arjun/hostelmate/internal/middleware"
)

// PaymentController handles the payment ledger
type PaymentController struct {
	paymentService *services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreatePayment records a ledger entry
// @Summary Record a payment
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Payment data"
// @Success 201 {object} dto.APIResponse{data=dto.PaymentResponse}
// @Failure 409 {object} dto.ErrorResponse "Transaction ID already recorded or allocation mismatch"
// @Router /payments [post]
func (c *PaymentController) CreatePayment(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	payment, err := c.paymentService.CreatePayment(ctx, actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(payment, "Payment recorded"))
}

// GetPaymentByID returns one payment
// @Summary Get payment details
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentResponse}
// @Failure 404 {object} dto.ErrorResponse "Payment not found"
// @Router /payments/{id} [get]
func (c *PaymentController) GetPaymentByID(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	payment, err := c.paymentService.GetPaymentByID(ctx, actor, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(payment, "Payment retrieved"))
}

// ListPayments lists payments with optional filters
// @Summary List payments
// @Tags payments
// @Security BearerAuth
// @Produce json
// @Param studentId query int false "Student filter (staff only)"
// @Param status query string false "Status filter" Enums(pending, paid, failed, refunded, waived)
// @Param paymentType query string false "Type filter" Enums(security_deposit, rent, maintenance_fee, other)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaymentListResponse}
// @Router /payments [get]
func (c *PaymentController) ListPayments(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}

	filter := repositories.PaymentFilter{
		StudentID:   queryInt64(ctx, "studentId"),
		Status:      ctx.Query("status"),
		PaymentType: ctx.Query("paymentType"),
		Page:        queryInt(ctx, "page", 1),
		PageSize:    queryInt(ctx, "pageSize", 10),
	}

	payments, err := c.paymentService.ListPayments(ctx, actor, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(payments, "Payments retrieved"))
}

// UpdatePaymentStatus changes a payment's settlement state
// @Summary Update payment status
// @Description Moving to paid stamps the payment date when none is supplied.
// @Tags payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param request body dto.UpdatePaymentStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentResponse}
// @Router /payments/{id}/status [patch]
func (c *PaymentController) UpdatePaymentStatus(ctx *gin.Context) {
	actor, ok := actorFrom(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	payment, err := c.paymentService.UpdatePaymentStatus(ctx, actor, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(payment, "Payment status updated"))
}
