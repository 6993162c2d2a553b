package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
	RoleDelivery UserRole = "DELIVERY"
)

func (r UserRole) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin || r == RoleDelivery
}

func (r UserRole) DisplayName() string {
	switch r {
	case RoleCustomer:
		return "Cliente"
	case RoleAdmin:
		return "Administrador"
	case RoleDelivery:
		return "Repartidor"
	}
	return string(r)
}

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         UserRole  `json:"role" gorm:"not null;default:'CUSTOMER'"`
	Phone        string    `json:"phone"`
	RUT          string    `json:"rut"`
	Address      string    `json:"address"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
