package handlers

import (
	"net/http"

	"sabores-api/config"
	"sabores-api/middleware"
	"sabores-api/models"
	"sabores-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetReadyOrders lists orders waiting for hand-off (delivery role)
func GetReadyOrders(c *gin.Context) {
	var orders []models.Order
	config.DB.Preload("Items").
		Where("status = ?", models.StatusReady).
		Order("created_at asc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// DeliverOrder marks a READY order as delivered (delivery role)
func DeliverOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusDelivered, "delivery"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot deliver order",
			"reason":        err.Error(),
			"current_state": order.Status,
		})
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", models.StatusDelivered).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deliver order"})
		return
	}

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusDelivered,
		ChangedBy:  middleware.GetUserID(c),
		Note:       "Order handed off to customer",
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Order delivered",
		"order_id": order.ID,
	})
}
