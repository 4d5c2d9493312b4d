package handlers

import (
	"net/http"

	"cafe-counter-api/middleware"
	"cafe-counter-api/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Cart *services.CartService
}

// Open resumes the caller's draft order or starts an empty one
func (h *CartHandler) Open(c *gin.Context) {
	view, err := h.Cart.Open(middleware.GetSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": view})
}

type CartItemRequest struct {
	ItemName string `json:"item_name" binding:"required"`
}

// AddItem puts a menu item on the caller's draft
func (h *CartHandler) AddItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.Cart.AddItem(middleware.GetSession(c), req.ItemName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": view})
}

// RemoveItem takes a menu item off the caller's draft
func (h *CartHandler) RemoveItem(c *gin.Context) {
	outcome, err := h.Cart.RemoveItem(middleware.GetSession(c), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	if outcome.OrderDeleted {
		c.JSON(http.StatusOK, gin.H{"message": "Draft emptied and removed", "order_deleted": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": outcome.View, "order_deleted": false})
}

// Place submits the draft as the final order
func (h *CartHandler) Place(c *gin.Context) {
	view, err := h.Cart.Place(middleware.GetSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order placed", "order": view})
}

// Cancel stops editing; the draft keeps its lines and can be resumed
func (h *CartHandler) Cancel(c *gin.Context) {
	view, err := h.Cart.CancelDraft(middleware.GetSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stopped editing; draft kept", "draft": view})
}
