package handlers

import (
	"net/http"

	"cafe-counter-api/middleware"
	"cafe-counter-api/models"
	"cafe-counter-api/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	Menu *services.MenuService
}

type AddMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"min=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
}

// AddItem inserts a new menu item (manager only)
func (h *MenuHandler) AddItem(c *gin.Context) {
	var req AddMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Menu.AddItem(middleware.GetSession(c), models.MenuItem{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

type UpdateMenuItemRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// UpdateItem changes one field of a menu item per call (manager only)
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Menu.UpdateItem(middleware.GetSession(c), c.Param("name"), req.Field, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteItem removes a menu item (manager only)
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	if err := h.Menu.DeleteItem(middleware.GetSession(c), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// Search matches a term against categories, then exact item names
func (h *MenuHandler) Search(c *gin.Context) {
	items, err := h.Menu.Search(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// ListAll returns the whole menu
func (h *MenuHandler) ListAll(c *gin.Context) {
	items, err := h.Menu.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}
