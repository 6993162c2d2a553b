package handlers

import (
	"net/http"
	"strings"

	"sabores-api/config"
	"sabores-api/models"
	"sabores-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetMenu returns menu items with optional filters (public)
func GetMenu(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB

	if category := c.Query("category"); category != "" {
		cat := models.CategoryType(category)
		if !cat.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category: " + category})
			return
		}
		query = query.Where("category = ?", cat)
	}
	if c.Query("vegetarian") == "true" {
		query = query.Where("is_vegetarian = ?", true)
	}
	if c.Query("available") == "true" {
		query = query.Where("is_available = ?", true)
	}

	query.Order("category, name").Find(&items)

	// Free-text search over name and description
	if search := strings.ToLower(c.Query("search")); search != "" {
		filtered := items[:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Name), search) ||
				strings.Contains(strings.ToLower(it.Description), search) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// GetMenuByCategories returns the menu grouped into category sections,
// skipping empty ones (public)
func GetMenuByCategories(c *gin.Context) {
	var items []models.MenuItem
	config.DB.Where("is_available = ?", true).Order("name").Find(&items)

	var sections []models.MenuCategory
	for _, cat := range models.AllCategories {
		section := models.MenuCategory{
			Type:        cat,
			DisplayName: cat.DisplayName(),
		}
		for _, it := range items {
			if it.Category == cat {
				section.Items = append(section.Items, it)
			}
		}
		if len(section.Items) > 0 {
			sections = append(sections, section)
		}
	}

	c.JSON(http.StatusOK, gin.H{"categories": sections})
}

// GetMenuItem returns one menu item by id (public)
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}

	labels := gin.H{}
	var terminal []models.OrderStatus
	for _, s := range models.AllStatuses {
		labels[string(s)] = s.DisplayName()
		if statemachine.IsTerminal(s) {
			terminal = append(terminal, s)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": terminal,
		"labels":          labels,
		"description":     "Sabores de Hogar order lifecycle",
	})
}
