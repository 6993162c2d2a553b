package models

import "time"

// GuestUserID marks orders placed without an authenticated session
const GuestUserID = "invitado"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

var AllStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCancelled,
}

func (s OrderStatus) IsValid() bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// DisplayName returns the customer-facing Spanish label
func (s OrderStatus) DisplayName() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusConfirmed:
		return "Confirmado"
	case StatusPreparing:
		return "En Preparación"
	case StatusReady:
		return "Listo"
	case StatusDelivered:
		return "Entregado"
	case StatusCancelled:
		return "Cancelado"
	}
	return string(s)
}

// OrderType says how the order reaches the customer
type OrderType string

const (
	TypeDelivery OrderType = "DELIVERY"
	TypePickup   OrderType = "PICKUP"
	TypeDineIn   OrderType = "DINE_IN"
)

func (t OrderType) IsValid() bool {
	return t == TypeDelivery || t == TypePickup || t == TypeDineIn
}

func (t OrderType) DisplayName() string {
	switch t {
	case TypeDelivery:
		return "Delivery"
	case TypePickup:
		return "Retiro en Local"
	case TypeDineIn:
		return "Para Comer Aquí"
	}
	return string(t)
}

// Order is an immutable snapshot of the cart taken at checkout. Only the
// status field changes afterwards, and only through admin endpoints.
type Order struct {
	ID              string               `json:"id" gorm:"primaryKey"`
	UserID          string               `json:"user_id" gorm:"index"`
	CustomerName    string               `json:"customer_name" gorm:"not null"`
	CustomerPhone   string               `json:"customer_phone" gorm:"not null"`
	DeliveryAddress string               `json:"delivery_address"`
	OrderType       OrderType            `json:"order_type" gorm:"not null"`
	Status          OrderStatus          `json:"status" gorm:"not null;default:'PENDING'"`
	Total           int                  `json:"total"`
	Notes           string               `json:"notes"`
	Items           []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory   []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// OrderItem is one frozen cart line inside an order. Name and price are
// snapshots; later menu edits never change past orders.
type OrderItem struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	OrderID    string `json:"order_id" gorm:"index;not null"`
	MenuItemID string `json:"menu_item_id" gorm:"not null"`
	Name       string `json:"name"`
	Price      int    `json:"price" gorm:"not null"`
	Quantity   int    `json:"quantity" gorm:"not null"`
	Note       string `json:"note"`
}

// OrderStatusHistory tracks every status change for the audit trail
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    string      `json:"order_id" gorm:"index;not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  string      `json:"changed_by"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
