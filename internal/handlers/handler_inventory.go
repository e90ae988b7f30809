package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizdash/internal/core/ports/services"
	"github.com/SscSPs/bizdash/internal/dto"
	"github.com/SscSPs/bizdash/internal/middleware"
	"github.com/gin-gonic/gin"
)

type inventoryHandler struct {
	inventory portssvc.InventorySvc
	dashboard portssvc.DashboardSvc
}

// RegisterInventoryRoutes registers the stock routes.
func RegisterInventoryRoutes(rg *gin.RouterGroup, inventory portssvc.InventorySvc, dashboard portssvc.DashboardSvc) {
	h := &inventoryHandler{inventory: inventory, dashboard: dashboard}

	inv := rg.Group("/inventory")
	{
		inv.GET("", h.listItems)
		inv.GET("/low-stock", h.listLowStock)
		inv.POST("", h.createItem)
		inv.PUT("/:id", h.updateItem)
		inv.PATCH("/:id/quantity", h.updateQuantity)
		inv.DELETE("/:id", h.deleteItem)
	}
}

// listItems godoc
// @Summary List inventory items
// @Tags inventory
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.InventoryItemResponse]
// @Security BearerAuth
// @Router /inventory [get]
func (h *inventoryHandler) listItems(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToList(h.inventory.Inventory(), dto.ToInventoryItemResponse))
}

// listLowStock godoc
// @Summary List items running low
// @Description Items whose quantity is at or below their threshold.
// @Tags inventory
// @Produce json
// @Success 200 {object} dto.ListResponse[dto.InventoryItemResponse]
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/low-stock [get]
func (h *inventoryHandler) listLowStock(c *gin.Context) {
	items, err := h.dashboard.LowStock(c.Request.Context())
	if err != nil {
		respondError(c, err, "list low stock items")
		return
	}
	c.JSON(http.StatusOK, dto.ToList(items, dto.ToInventoryItemResponse))
}

// createItem godoc
// @Summary Add an inventory item
// @Description lastUpdated defaults to today.
// @Tags inventory
// @Accept json
// @Produce json
// @Param item body dto.InventoryItemRequest true "Item"
// @Success 201 {object} dto.InventoryItemResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory [post]
func (h *inventoryHandler) createItem(c *gin.Context) {
	var req dto.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	item, err := req.ToDomain("")
	if err == nil {
		item, err = h.inventory.AddInventoryItem(c.Request.Context(), item)
	}
	if err != nil {
		respondError(c, err, "add inventory item")
		return
	}
	middleware.GetLoggerFromContext(c).Info("Inventory item added", slog.String("item_id", item.ID))
	c.JSON(http.StatusCreated, dto.ToInventoryItemResponse(item))
}

// updateItem godoc
// @Summary Update an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param item body dto.InventoryItemRequest true "Item"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id} [put]
func (h *inventoryHandler) updateItem(c *gin.Context) {
	var req dto.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	item, err := req.ToDomain(c.Param("id"))
	if err == nil {
		item, err = h.inventory.UpdateInventoryItem(c.Request.Context(), item)
	}
	if err != nil {
		respondError(c, err, "update inventory item")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// updateQuantity godoc
// @Summary Set the stock level of an item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param quantity body dto.QuantityRequest true "New quantity"
// @Success 200 {object} dto.InventoryItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /inventory/{id}/quantity [patch]
func (h *inventoryHandler) updateQuantity(c *gin.Context) {
	var req dto.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	item, err := h.inventory.UpdateInventoryItemQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
	if err != nil {
		respondError(c, err, "update quantity")
		return
	}
	c.JSON(http.StatusOK, dto.ToInventoryItemResponse(item))
}

// deleteItem godoc
// @Summary Delete an inventory item
// @Description Refused with 409 while the item is still in stock.
// @Tags inventory
// @Param id path string true "Item ID"
// @Success 204
// @Failure 409 {object} ErrorResponse "Item still in stock"
// @Security BearerAuth
// @Router /inventory/{id} [delete]
func (h *inventoryHandler) deleteItem(c *gin.Context) {
	if err := h.inventory.DeleteInventoryItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete inventory item")
		return
	}
	c.Status(http.StatusNoContent)
}
