package handlers

import (
	"log"
	"net/http"

	"sabores-api/config"
	"sabores-api/middleware"
	"sabores-api/models"
	"sabores-api/statemachine"
	"sabores-api/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckoutRequest struct {
	CustomerName    string           `json:"customer_name" binding:"required"`
	CustomerPhone   string           `json:"customer_phone" binding:"required"`
	OrderType       models.OrderType `json:"order_type" binding:"required"`
	DeliveryAddress string           `json:"delivery_address"`
	Notes           string           `json:"notes"`
}

// Checkout snapshots the session's cart into a new PENDING order. The cart
// is cleared only after the order has been committed; a failed write leaves
// it intact.
func Checkout(c *gin.Context) {
	key, ok := requireSession(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.OrderType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order type. Must be: DELIVERY, PICKUP or DINE_IN"})
		return
	}
	if !validation.IsValidPhone(req.CustomerPhone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Chilean phone number"})
		return
	}
	if req.OrderType == models.TypeDelivery && req.DeliveryAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery orders need a delivery address"})
		return
	}

	cart, err := loadCart(c, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	if cart.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	userID := middleware.GetUserID(c)
	if userID == "" {
		userID = models.GuestUserID
	}

	order := models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		OrderType:       req.OrderType,
		Status:          models.StatusPending,
		Total:           cart.Total(),
		Notes:           req.Notes,
	}
	for _, line := range cart.Lines {
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: line.ItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
			Note:       line.Note,
		})
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		history := models.OrderStatusHistory{
			OrderID:   order.ID,
			ToStatus:  models.StatusPending,
			ChangedBy: userID,
			Note:      "Order placed",
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	// The order exists now; a failed cart cleanup only risks a stale cart
	if err := clearStoredCart(c, key); err != nil {
		log.Println("Checkout: failed to clear cart for", key, ":", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":        "Order placed successfully",
		"order":          order,
		"status_display": order.Status.DisplayName(),
	})
}

// GetMyOrders returns the logged-in user's orders, newest first
func GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var orders []models.Order
	config.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order with items and status history.
// Owners see their own orders; admins see any.
func GetOrderDetail(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.
		Preload("Items").
		Preload("StatusHistory").
		First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != userID && middleware.GetRole(c) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":          order,
		"status_display": order.Status.DisplayName(),
		"type_display":   order.OrderType.DisplayName(),
	})
}

// CancelOrder cancels the caller's own order while the lifecycle allows it
// (PENDING or CONFIRMED)
func CancelOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, "customer"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "Cannot cancel order",
			"reason":        err.Error(),
			"current_state": order.Status,
		})
		return
	}

	prevStatus := order.Status
	if err := config.DB.Model(&order).Update("status", models.StatusCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}

	history := models.OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: prevStatus,
		ToStatus:   models.StatusCancelled,
		ChangedBy:  userID,
		Note:       "Order cancelled by customer",
	}
	config.DB.Create(&history)

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}
