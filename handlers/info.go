package handlers

import (
	"net/http"

	"cafe-counter-api/models"
	"cafe-counter-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo documents the order lifecycle for API consumers
func GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states": []models.OrderStatus{
			models.StatusDraft,
			models.StatusPlaced,
			models.StatusCanceled,
		},
		"transitions": statemachine.GetAllTransitions(),
	})
}
