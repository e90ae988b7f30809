package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/bizdash/internal/apperrors"
	"github.com/SscSPs/bizdash/internal/core/domain"
	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workforceHandler serves workers, their payments, leaves and absences.
type workforceHandler struct {
	workers   portssvc.WorkerSvc
	payments  portssvc.WorkerPaymentSvc
	leaves    portssvc.WorkerLeaveSvc
	absences  portssvc.AbsenceSvc
	dashboard portssvc.DashboardSvc
	now       func() time.Time
}

// WorkforceServices groups what the worker routes depend on.
type WorkforceServices struct {
	Workers   portssvc.WorkerSvc
	Payments  portssvc.WorkerPaymentSvc
	Leaves    portssvc.WorkerLeaveSvc
	Absences  portssvc.AbsenceSvc
	Dashboard portssvc.DashboardSvc
}

// RegisterWorkforceRoutes registers the worker, worker payment, leave and absence routes.
func RegisterWorkforceRoutes(rg *gin.RouterGroup, svcs WorkforceServices) {
	h := &workforceHandler{
		workers:   svcs.Workers,
		payments:  svcs.Payments,
		leaves:    svcs.Leaves,
		absences:  svcs.Absences,
		dashboard: svcs.Dashboard,
		now:       time.Now,
	}

	workers := rg.Group("/workers")
	{
		workers.GET("", h.listWorkers)
		workers.GET("/:id", h.getWorker)
		workers.GET("/:id/salary", h.getWorkerSalary)
		workers.POST("", h.createWorker)
		workers.PUT("/:id", h.updateWorker)
		workers.DELETE("/:id", h.deleteWorker)
	}

	payments := rg.Group("/worker-payments")
	{
		payments.GET("", h.listWorkerPayments)
		payments.POST("", h.createWorkerPayment)
		payments.PUT("/:id", h.updateWorkerPayment)
		payments.DELETE("/:id", h.deleteWorkerPayment)
	}

	leaves := rg.Group("/worker-leaves")
	{
		leaves.GET("", h.listLeaves)
		leaves.POST("", h.createLeave)
		leaves.PUT("/:id", h.updateLeave)
		leaves.DELETE("/:id", h.deleteLeave)
		leaves.POST("/:id/approve", h.approveLeave)
		leaves.POST("/:id/reject", h.rejectLeave)
	}

	rg.POST("/absences", h.recordAbsence)
}

// listWorkers godoc
// @Summary List workers
// @Tags workers
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.WorkerResponse]
// @Security BearerAuth
// @Router /workers [get]
func (h *workforceHandler) listWorkers(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToList(h.workers.Workers(), dto.ToWorkerResponse))
}

// getWorker godoc
// @Summary Get a worker
// @Tags workers
// @Produce json
// @Param id path string true "Worker ID"
// @Success 200 {object} dto.WorkerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id} [get]
func (h *workforceHandler) getWorker(c *gin.Context) {
	worker, ok := h.workers.Worker(c.Param("id"))
	if !ok {
		respondError(c, fmt.Errorf("worker %s: %w", c.Param("id"), apperrors.ErrNotFound), "get worker")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// getWorkerSalary godoc
// @Summary Monthly salary position of a worker
// @Description Salary after approved leaves, payments made and what remains. Monthly workers only.
// @Tags workers
// @Produce json
// @Param id path string true "Worker ID"
// @Param month query string false "Month (YYYY-MM), current month when omitted"
// @Success 200 {object} dto.WorkerSalaryResponse
// @Failure 400 {object} ErrorResponse "Invalid month or daily-paid worker"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id}/salary [get]
func (h *workforceHandler) getWorkerSalary(c *gin.Context) {
	month, ok := monthFilter(c)
	if !ok {
		return
	}
	if month == nil {
		current := domain.MonthOf(h.now())
		month = &current
	}
	salary, err := h.dashboard.WorkerSalary(c.Request.Context(), c.Param("id"), *month)
	if err != nil {
		respondError(c, err, "compute worker salary")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerSalaryResponse(salary))
}

// createWorker godoc
// @Summary Add a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body dto.WorkerRequest true "Worker"
// @Success 201 {object} dto.WorkerResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers [post]
func (h *workforceHandler) createWorker(c *gin.Context) {
	var req dto.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	worker, err := req.ToDomain("")
	if err == nil {
		worker, err = h.workers.AddWorker(c.Request.Context(), worker)
	}
	if err != nil {
		respondError(c, err, "add worker")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Worker added", slog.String("worker_id", worker.ID))
	c.JSON(http.StatusCreated, dto.ToWorkerResponse(worker))
}

// updateWorker godoc
// @Summary Update a worker
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Worker ID"
// @Param worker body dto.WorkerRequest true "Worker"
// @Success 200 {object} dto.WorkerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workers/{id} [put]
func (h *workforceHandler) updateWorker(c *gin.Context) {
	var req dto.WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	worker, err := req.ToDomain(c.Param("id"))
	if err == nil {
		worker, err = h.workers.UpdateWorker(c.Request.Context(), worker)
	}
	if err != nil {
		respondError(c, err, "update worker")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerResponse(worker))
}

// deleteWorker godoc
// @Summary Delete a worker
// @Description Refused with 409 while payments or leaves reference the worker.
// @Tags workers
// @Param id path string true "Worker ID"
// @Success 204
// @Failure 409 {object} ErrorResponse "Worker has payments or leaves"
// @Security BearerAuth
// @Router /workers/{id} [delete]
func (h *workforceHandler) deleteWorker(c *gin.Context) {
	if err := h.workers.DeleteWorker(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete worker")
		return
	}
	c.Status(http.StatusNoContent)
}

// listWorkerPayments godoc
// @Summary List worker payments
// @Tags worker-payments
// @Produce json
// @Param workerId query string false "Only this worker"
// @Param month query string false "Only this month (YYYY-MM)"
// @Success 200 {object} dto.ListResponse[dto.WorkerPaymentResponse]
// @Security BearerAuth
// @Router /worker-payments [get]
func (h *workforceHandler) listWorkerPayments(c *gin.Context) {
	month, ok := monthFilter(c)
	if !ok {
		return
	}
	workerID := c.Query("workerId")
	payments := inMonth(h.payments.WorkerPayments(), month)
	if workerID != "" {
		filtered := payments[:0:0]
		for _, p := range payments {
			if p.WorkerID == workerID {
				filtered = append(filtered, p)
			}
		}
		payments = filtered
	}
	c.JSON(http.StatusOK, dto.ToList(payments, dto.ToWorkerPaymentResponse))
}

// createWorkerPayment godoc
// @Summary Record a worker payment
// @Tags worker-payments
// @Accept json
// @Produce json
// @Param payment body dto.WorkerPaymentRequest true "Payment"
// @Success 201 {object} dto.WorkerPaymentResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /worker-payments [post]
func (h *workforceHandler) createWorkerPayment(c *gin.Context) {
	var req dto.WorkerPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	payment, err := req.ToDomain("")
	if err == nil {
		payment, err = h.payments.AddWorkerPayment(c.Request.Context(), payment)
	}
	if err != nil {
		respondError(c, err, "record worker payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkerPaymentResponse(payment))
}

// updateWorkerPayment godoc
// @Summary Update a worker payment
// @Tags worker-payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param payment body dto.WorkerPaymentRequest true "Payment"
// @Success 200 {object} dto.WorkerPaymentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /worker-payments/{id} [put]
func (h *workforceHandler) updateWorkerPayment(c *gin.Context) {
	var req dto.WorkerPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	payment, err := req.ToDomain(c.Param("id"))
	if err == nil {
		payment, err = h.payments.UpdateWorkerPayment(c.Request.Context(), payment)
	}
	if err != nil {
		respondError(c, err, "update worker payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerPaymentResponse(payment))
}

// deleteWorkerPayment godoc
// @Summary Delete a worker payment
// @Tags worker-payments
// @Param id path string true "Payment ID"
// @Success 204
// @Security BearerAuth
// @Router /worker-payments/{id} [delete]
func (h *workforceHandler) deleteWorkerPayment(c *gin.Context) {
	if err := h.payments.DeleteWorkerPayment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete worker payment")
		return
	}
	c.Status(http.StatusNoContent)
}

// listLeaves godoc
// @Summary List worker leaves
// @Tags worker-leaves
// @Produce json
// @Param workerId query string false "Only this worker"
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} dto.ListResponse[dto.WorkerLeaveResponse]
// @Security BearerAuth
// @Router /worker-leaves [get]
func (h *workforceHandler) listLeaves(c *gin.Context) {
	workerID := c.Query("workerId")
	status := domain.ApprovalStatus(c.Query("status"))
	leaves := make([]domain.WorkerLeave, 0)
	for _, l := range h.leaves.WorkerLeaves() {
		if workerID != "" && l.WorkerID != workerID {
			continue
		}
		if status != "" && l.ApprovalStatus != status {
			continue
		}
		leaves = append(leaves, l)
	}
	c.JSON(http.StatusOK, dto.ToList(leaves, dto.ToWorkerLeaveResponse))
}

// createLeave godoc
// @Summary Request a leave
// @Description New leaves always start pending.
// @Tags worker-leaves
// @Accept json
// @Produce json
// @Param leave body dto.WorkerLeaveRequest true "Leave"
// @Success 201 {object} dto.WorkerLeaveResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /worker-leaves [post]
func (h *workforceHandler) createLeave(c *gin.Context) {
	var req dto.WorkerLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	leave, err := req.ToDomain("")
	if err == nil {
		leave, err = h.leaves.AddWorkerLeave(c.Request.Context(), leave)
	}
	if err != nil {
		respondError(c, err, "add leave")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkerLeaveResponse(leave))
}

// updateLeave godoc
// @Summary Edit a leave
// @Description The approval status is kept; use approve or reject to change it.
// @Tags worker-leaves
// @Accept json
// @Produce json
// @Param id path string true "Leave ID"
// @Param leave body dto.WorkerLeaveRequest true "Leave"
// @Success 200 {object} dto.WorkerLeaveResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /worker-leaves/{id} [put]
func (h *workforceHandler) updateLeave(c *gin.Context) {
	var req dto.WorkerLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	leave, err := req.ToDomain(c.Param("id"))
	if err == nil {
		leave, err = h.leaves.UpdateWorkerLeave(c.Request.Context(), leave)
	}
	if err != nil {
		respondError(c, err, "update leave")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerLeaveResponse(leave))
}

// deleteLeave godoc
// @Summary Delete a leave
// @Tags worker-leaves
// @Param id path string true "Leave ID"
// @Success 204
// @Security BearerAuth
// @Router /worker-leaves/{id} [delete]
func (h *workforceHandler) deleteLeave(c *gin.Context) {
	if err := h.leaves.DeleteWorkerLeave(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete leave")
		return
	}
	c.Status(http.StatusNoContent)
}

// approveLeave godoc
// @Summary Approve a pending leave
// @Tags worker-leaves
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} dto.WorkerLeaveResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Leave already resolved"
// @Security BearerAuth
// @Router /worker-leaves/{id}/approve [post]
func (h *workforceHandler) approveLeave(c *gin.Context) {
	leave, err := h.leaves.ApproveLeave(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "approve leave")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerLeaveResponse(leave))
}

// rejectLeave godoc
// @Summary Reject a pending leave
// @Tags worker-leaves
// @Produce json
// @Param id path string true "Leave ID"
// @Success 200 {object} dto.WorkerLeaveResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Leave already resolved"
// @Security BearerAuth
// @Router /worker-leaves/{id}/reject [post]
func (h *workforceHandler) rejectLeave(c *gin.Context) {
	leave, err := h.leaves.RejectLeave(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "reject leave")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkerLeaveResponse(leave))
}

// recordAbsence godoc
// @Summary Record an absence
// @Description Records a leave and, optionally, a payment made on the same day in one step.
// @Tags absences
// @Accept json
// @Produce json
// @Param absence body dto.AbsenceRequest true "Absence"
// @Success 201 {object} dto.AbsenceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown worker"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /absences [post]
func (h *workforceHandler) recordAbsence(c *gin.Context) {
	var req dto.AbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	leave, payment, err := req.ToDomain()
	if err != nil {
		respondError(c, err, "record absence")
		return
	}
	absence, err := h.absences.RecordAbsence(c.Request.Context(), leave, payment)
	if err != nil {
		respondError(c, err, "record absence")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAbsenceResponse(absence))
}
