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

func loadFavorites(c *gin.Context, userID string) ([]string, error) {
	raw, err := config.KV.Get(c.Request.Context(), "favorites:"+userID)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{}, nil
	}
	return ids, nil
}

func saveFavorites(c *gin.Context, userID string, ids []string) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return config.KV.Set(c.Request.Context(), "favorites:"+userID, string(raw))
}

// GetFavorites returns the caller's favorite menu items
func GetFavorites(c *gin.Context) {
	userID := middleware.GetUserID(c)
	ids, err := loadFavorites(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
		return
	}

	items := []models.MenuItem{}
	if len(ids) > 0 {
		config.DB.Where("id IN ?", ids).Find(&items)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "favorites": items})
}

// AddFavorite marks a menu item as a favorite
func AddFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	itemID := c.Param("itemId")

	var item models.MenuItem
	if err := config.DB.First(&item, "id = ?", itemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	ids, err := loadFavorites(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
		return
	}
	for _, id := range ids {
		if id == itemID {
			c.JSON(http.StatusOK, gin.H{"message": "Already a favorite", "favorites": ids})
			return
		}
	}
	ids = append(ids, itemID)
	if err := saveFavorites(c, userID, ids); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorites"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Added to favorites", "favorites": ids})
}

// RemoveFavorite unmarks a favorite
func RemoveFavorite(c *gin.Context) {
	userID := middleware.GetUserID(c)
	itemID := c.Param("itemId")

	ids, err := loadFavorites(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load favorites"})
		return
	}
	kept := ids[:0]
	for _, id := range ids {
		if id != itemID {
			kept = append(kept, id)
		}
	}
	if err := saveFavorites(c, userID, kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites", "favorites": kept})
}
