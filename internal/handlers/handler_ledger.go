package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/bizdash/internal/core/domain"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler serves the money records: carts, sales, expenses and partner payments.
type ledgerHandler struct {
	carts    portssvc.CartSvc
	sales    portssvc.SaleSvc
	expenses portssvc.ExpenseSvc
	payments portssvc.PaymentSvc
}

// RegisterLedgerRoutes registers the cart, sale, expense and partner payment routes.
func RegisterLedgerRoutes(rg *gin.RouterGroup, carts portssvc.CartSvc, sales portssvc.SaleSvc, expenses portssvc.ExpenseSvc, payments portssvc.PaymentSvc) {
	h := &ledgerHandler{carts: carts, sales: sales, expenses: expenses, payments: payments}

	cartGroup := rg.Group("/carts")
	{
		cartGroup.GET("", h.listCarts)
		cartGroup.POST("", h.createCart)
		cartGroup.PUT("/:id", h.updateCart)
		cartGroup.DELETE("/:id", h.deleteCart)
	}

	salesGroup := rg.Group("/sales")
	{
		salesGroup.GET("", h.listSales)
		salesGroup.POST("", h.createSale)
		salesGroup.PUT("/:id", h.updateSale)
		salesGroup.DELETE("/:id", h.deleteSale)
	}

	expenseGroup := rg.Group("/expenses")
	{
		expenseGroup.GET("", h.listExpenses)
		expenseGroup.POST("", h.createExpense)
		expenseGroup.PUT("/:id", h.updateExpense)
		expenseGroup.DELETE("/:id", h.deleteExpense)
	}

	paymentGroup := rg.Group("/payments")
	{
		paymentGroup.GET("", h.listPayments)
		paymentGroup.POST("", h.createPayment)
		paymentGroup.PUT("/:id", h.updatePayment)
		paymentGroup.DELETE("/:id", h.deletePayment)
	}
}

// monthFilter reads an optional ?month= query. ok is false when the response was already written.
func monthFilter(c *gin.Context) (month *domain.Month, ok bool) {
	var params dto.MonthParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err)
		return nil, false
	}
	if params.Month == "" {
		return nil, true
	}
	m, err := domain.ParseMonth(params.Month)
	if err != nil {
		respondError(c, err, "parse month")
		return nil, false
	}
	return &m, true
}

func inMonth[T domain.Dated](records []T, month *domain.Month) []T {
	if month == nil {
		return records
	}
	out := make([]T, 0, len(records))
	for _, r := range records {
		if month.Contains(r.RecordDate()) {
			out = append(out, r)
		}
	}
	return out
}

// listCarts godoc
// @Summary List carts
// @Tags carts
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.CartResponse]
// @Failure 503 {object} ErrorResponse "Data is still loading"
// @Security BearerAuth
// @Router /carts [get]
func (h *ledgerHandler) listCarts(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToList(h.carts.Carts(), dto.ToCartResponse))
}

// createCart godoc
// @Summary Create a cart
// @Tags carts
// @Accept json
// @Produce json
// @Param cart body dto.CartRequest true "Cart"
// @Success 201 {object} dto.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /carts [post]
func (h *ledgerHandler) createCart(c *gin.Context) {
	var req dto.CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	cart, err := h.carts.AddCart(c.Request.Context(), req.ToDomain(""))
	if err != nil {
		respondError(c, err, "create cart")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Cart created", slog.String("cart_id", cart.ID))
	c.JSON(http.StatusCreated, dto.ToCartResponse(cart))
}

// updateCart godoc
// @Summary Rename a cart
// @Tags carts
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param cart body dto.CartRequest true "Cart"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /carts/{id} [put]
func (h *ledgerHandler) updateCart(c *gin.Context) {
	var req dto.CartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	cart, err := h.carts.UpdateCart(c.Request.Context(), req.ToDomain(c.Param("id")))
	if err != nil {
		respondError(c, err, "update cart")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// deleteCart godoc
// @Summary Delete a cart
// @Description Refused with 409 while sales records reference the cart.
// @Tags carts
// @Param id path string true "Cart ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Cart is in use"
// @Security BearerAuth
// @Router /carts/{id} [delete]
func (h *ledgerHandler) deleteCart(c *gin.Context) {
	if err := h.carts.DeleteCart(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete cart")
		return
	}
	c.Status(http.StatusNoContent)
}

// listSales godoc
// @Summary List sales records
// @Tags sales
// @Produce json
// @Param month query string false "Only this month (YYYY-MM)"
// @Success 200 {object} dto.ListResponse[dto.SaleResponse]
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [get]
func (h *ledgerHandler) listSales(c *gin.Context) {
	month, ok := monthFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToList(inMonth(h.sales.Sales(), month), dto.ToSaleResponse))
}

// createSale godoc
// @Summary Record a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.SaleRequest true "Sale"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *ledgerHandler) createSale(c *gin.Context) {
	var req dto.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	sale, err := req.ToDomain("")
	if err == nil {
		sale, err = h.sales.AddSale(c.Request.Context(), sale)
	}
	if err != nil {
		respondError(c, err, "record sale")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// updateSale godoc
// @Summary Update a sale
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "Sale ID"
// @Param sale body dto.SaleRequest true "Sale"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [put]
func (h *ledgerHandler) updateSale(c *gin.Context) {
	var req dto.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	sale, err := req.ToDomain(c.Param("id"))
	if err == nil {
		sale, err = h.sales.UpdateSale(c.Request.Context(), sale)
	}
	if err != nil {
		respondError(c, err, "update sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// deleteSale godoc
// @Summary Delete a sale
// @Tags sales
// @Param id path string true "Sale ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{id} [delete]
func (h *ledgerHandler) deleteSale(c *gin.Context) {
	if err := h.sales.DeleteSale(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete sale")
		return
	}
	c.Status(http.StatusNoContent)
}

// listExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Param month query string false "Only this month (YYYY-MM)"
// @Success 200 {object} dto.ListResponse[dto.ExpenseResponse]
// @Security BearerAuth
// @Router /expenses [get]
func (h *ledgerHandler) listExpenses(c *gin.Context) {
	month, ok := monthFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToList(inMonth(h.expenses.Expenses(), month), dto.ToExpenseResponse))
}

// createExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.ExpenseRequest true "Expense"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses [post]
func (h *ledgerHandler) createExpense(c *gin.Context) {
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	expense, err := req.ToDomain("")
	if err == nil {
		expense, err = h.expenses.AddExpense(c.Request.Context(), expense)
	}
	if err != nil {
		respondError(c, err, "record expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param expense body dto.ExpenseRequest true "Expense"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /expenses/{id} [put]
func (h *ledgerHandler) updateExpense(c *gin.Context) {
	var req dto.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	expense, err := req.ToDomain(c.Param("id"))
	if err == nil {
		expense, err = h.expenses.UpdateExpense(c.Request.Context(), expense)
	}
	if err != nil {
		respondError(c, err, "update expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Param id path string true "Expense ID"
// @Success 204
// @Security BearerAuth
// @Router /expenses/{id} [delete]
func (h *ledgerHandler) deleteExpense(c *gin.Context) {
	if err := h.expenses.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}

// listPayments godoc
// @Summary List partner payments
// @Tags payments
// @Produce json
// @Param month query string false "Only this month (YYYY-MM)"
// @Success 200 {object} dto.ListResponse[dto.PaymentResponse]
// @Security BearerAuth
// @Router /payments [get]
func (h *ledgerHandler) listPayments(c *gin.Context) {
	month, ok := monthFilter(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToList(inMonth(h.payments.Payments(), month), dto.ToPaymentResponse))
}

// createPayment godoc
// @Summary Record a partner payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.PaymentRequest true "Payment"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments [post]
func (h *ledgerHandler) createPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	payment, err := req.ToDomain("")
	if err == nil {
		payment, err = h.payments.AddPayment(c.Request.Context(), payment)
	}
	if err != nil {
		respondError(c, err, "record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// updatePayment godoc
// @Summary Update a partner payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param payment body dto.PaymentRequest true "Payment"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *ledgerHandler) updatePayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	payment, err := req.ToDomain(c.Param("id"))
	if err == nil {
		payment, err = h.payments.UpdatePayment(c.Request.Context(), payment)
	}
	if err != nil {
		respondError(c, err, "update payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a partner payment
// @Tags payments
// @Param id path string true "Payment ID"
// @Success 204
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *ledgerHandler) deletePayment(c *gin.Context) {
	if err := h.payments.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}
