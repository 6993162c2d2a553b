package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"sabores-api/config"
	"sabores-api/kvstore"
	"sabores-api/middleware"
	"sabores-api/models"

	"github.com/gin-gonic/gin"
)

// SessionHeader carries the client-generated id for anonymous carts
const SessionHeader = "X-Session-ID"

// sessionKey identifies the cart owner: the user id when authenticated,
// otherwise a guest key from the session header.
func sessionKey(c *gin.Context) (string, bool) {
	if userID := middleware.GetUserID(c); userID != "" {
		return userID, true
	}
	if sid := c.GetHeader(SessionHeader); sid != "" {
		return "guest:" + sid, true
	}
	return "", false
}

func loadCart(c *gin.Context, key string) (*models.Cart, error) {
	raw, err := config.KV.Get(c.Request.Context(), "cart:"+key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return &models.Cart{}, nil
	}
	if err != nil {
		return nil, err
	}
	var cart models.Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		// Corrupt stored cart: start over rather than wedging the session
		return &models.Cart{}, nil
	}
	return &cart, nil
}

func saveCart(c *gin.Context, key string, cart *models.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return config.KV.Set(c.Request.Context(), "cart:"+key, string(raw))
}

func clearStoredCart(c *gin.Context, key string) error {
	return config.KV.Remove(c.Request.Context(), "cart:"+key)
}

func cartResponse(cart *models.Cart) gin.H {
	return gin.H{
		"lines":      cart.Lines,
		"total":      cart.Total(),
		"item_count": cart.ItemCount(),
	}
}

// requireSession resolves the cart owner or rejects the request
func requireSession(c *gin.Context) (string, bool) {
	key, ok := sessionKey(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Log in or supply an " + SessionHeader + " header"})
		return "", false
	}
	return key, true
}

// GetCart returns the session's cart with its total and item count
func GetCart(c *gin.Context) {
	key, ok := requireSession(c)
	if !ok {
		return
	}
	cart, err := loadCart(c, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

type AddToCartRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Note     string `json:"note"`
}

// AddToCart adds a menu item to the cart. Lines merge only when both the
// item and the note match; "sin cebolla" stays separate from the plain dish.
func AddToCart(c *gin.Context) {
	key, ok := requireSession(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.MenuItem
	if err := config.DB.First(&item, "id = ?", req.ItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if !item.IsAvailable {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item '" + item.Name + "' is not available"})
		return
	}

	cart, err := loadCart(c, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	cart.AddItem(item, req.Quantity, req.Note)
	if err := saveCart(c, key, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateCartItem sets the quantity of the first line matching the item id.
// Quantity zero removes the item, same as DELETE.
func UpdateCartItem(c *gin.Context) {
	key, ok := requireSession(c)
	if !ok {
		return
	}
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cart, err := loadCart(c, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	cart.UpdateQuantity(c.Param("itemId"), *req.Quantity)
	if err := saveCart(c, key, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// RemoveCartItem removes every line for the item id, all note variants
// included. Use the line endpoints to drop a single variant.
func RemoveCartItem(c *gin.Context) {
	key, ok := requireSession(c)
	if !ok {
		return
	}
	cart, err := loadCart(c, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	cart.RemoveItem(c.Param("itemId"))
	if err := saveCart(c, key, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// UpdateCartLine sets the quantity of exactly one line by line id
func UpdateCartLine(c *gin.Context) {
	key, ok := requireSession(c)
	if !ok {
		return
	}
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cart, err := loadCart(c, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	cart.UpdateLine(c.Param("lineId"), *req.Quantity)
	if err := saveCart(c, key, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// RemoveCartLine removes exactly one line by line id
func RemoveCartLine(c *gin.Context) {
	key, ok := requireSession(c)
	if !ok {
		return
	}
	cart, err := loadCart(c, key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	cart.RemoveLine(c.Param("lineId"))
	if err := saveCart(c, key, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(cart))
}

// ClearCart empties the session's cart
func ClearCart(c *gin.Context) {
	key, ok := requireSession(c)
	if !ok {
		return
	}
	if err := clearStoredCart(c, key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, cartResponse(&models.Cart{}))
}
