package models

import "time"

// CategoryType is the closed set of menu categories
type CategoryType string

const (
	CategoryEmpanadasSopas      CategoryType = "EMPANADAS_SOPAS"
	CategoryPlatosPrincipales   CategoryType = "PLATOS_PRINCIPALES"
	CategoryCompletosSandwiches CategoryType = "COMPLETOS_SANDWICHES"
	CategoryAcompanamientos     CategoryType = "ACOMPANAMIENTOS"
	CategoryBebidas             CategoryType = "BEBIDAS"
)

// AllCategories in menu display order
var AllCategories = []CategoryType{
	CategoryEmpanadasSopas,
	CategoryPlatosPrincipales,
	CategoryCompletosSandwiches,
	CategoryAcompanamientos,
	CategoryBebidas,
}

func (c CategoryType) IsValid() bool {
	for _, cat := range AllCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// DisplayName returns the customer-facing Spanish label
func (c CategoryType) DisplayName() string {
	switch c {
	case CategoryEmpanadasSopas:
		return "Empanadas y Sopas"
	case CategoryPlatosPrincipales:
		return "Platos Principales"
	case CategoryCompletosSandwiches:
		return "Completos y Sándwiches"
	case CategoryAcompanamientos:
		return "Acompañamientos"
	case CategoryBebidas:
		return "Bebidas"
	}
	return string(c)
}

// MenuItem is one dish on the menu. Prices are whole Chilean pesos.
type MenuItem struct {
	ID           string       `json:"id" gorm:"primaryKey"`
	Name         string       `json:"name" gorm:"not null"`
	Description  string       `json:"description"`
	Price        int          `json:"price" gorm:"not null"`
	Category     CategoryType `json:"category" gorm:"index;not null"`
	ImageURL     string       `json:"image_url"`
	IsVegetarian bool         `json:"is_vegetarian"`
	IsAvailable  bool         `json:"is_available"`
	Ingredients  []string     `json:"ingredients" gorm:"serializer:json"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// MenuCategory groups items for the category-sectioned menu view
type MenuCategory struct {
	Type        CategoryType `json:"type"`
	DisplayName string       `json:"display_name"`
	Items       []MenuItem   `json:"items"`
}

// Ingredient is a kitchen stock entry (e.g. "Carne", 12 kg)
type Ingredient struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Quantity  int       `json:"quantity"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
