package handlers

import (
	"net/http"
	"strconv"

	"cafe-counter-api/middleware"
	"cafe-counter-api/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	Admin *services.OrderAdminService
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return 0, false
	}
	return uint(id), true
}

// Get returns one order with its lines
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	view, err := h.Admin.Get(middleware.GetSession(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": view})
}

type OrderItemRequest struct {
	ItemName string `json:"item_name" binding:"required"`
}

// AddItem puts a menu item on an existing unpaid order
func (h *OrderHandler) AddItem(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	var req OrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.Admin.AddItem(middleware.GetSession(c), id, req.ItemName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": view})
}

// RemoveItem takes a menu item off an existing unpaid order; removing
// the last line deletes the order itself
func (h *OrderHandler) RemoveItem(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	outcome, err := h.Admin.RemoveItem(middleware.GetSession(c), id, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	if outcome.OrderDeleted {
		c.JSON(http.StatusOK, gin.H{"message": "Order emptied and removed", "order_deleted": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": outcome.View, "order_deleted": false})
}

// Cancel deletes an unpaid order and all its lines
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	if err := h.Admin.Cancel(middleware.GetSession(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order canceled", "order_id": id})
}

// HistoryHandler serves the read-only order views.
type HistoryHandler struct {
	History *services.HistoryService
}

// UnpaidRecent lists all unpaid orders of the last 24 hours (staff)
func (h *HistoryHandler) UnpaidRecent(c *gin.Context) {
	orders, err := h.History.UnpaidRecent(middleware.GetSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// MyRecent lists the caller's own most recent orders
func (h *HistoryHandler) MyRecent(c *gin.Context) {
	orders, err := h.History.MyRecent(middleware.GetSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// PaymentHandler toggles the paid flag (staff only).
type PaymentHandler struct {
	Payments *services.PaymentService
}

type SetPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

// SetPaid marks an order paid or unpaid
func (h *PaymentHandler) SetPaid(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}
	var req SetPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Payments.SetPaid(middleware.GetSession(c), id, *req.Paid)
	if err != nil {
		respondError(c, err)
		return
	}
	msg := "Order marked as unpaid"
	if order.Paid {
		msg = "Order marked as paid"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg, "order": order})
}
