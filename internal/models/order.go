package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order statuses. An order starts as pending; an administrator moves it
// forward until delivered, or to cancelled.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentCash        = "cash"
	PaymentCard        = "card"
	PaymentMobileMoney = "mobile_money"
)

// Order is an order header. Status is the only field mutated after creation.
type Order struct {
	BaseModel
	UserID          *uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	User            *User       `json:"user,omitempty"`
	OrderNumber     string      `gorm:"uniqueIndex" json:"order_number"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryLat     *float64    `json:"delivery_lat"`
	DeliveryLng     *float64    `json:"delivery_lng"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"delivery_fee"`
	Total           float64     `json:"total"`
	Status          string      `gorm:"index;default:pending" json:"status"`
	PaymentMethod   string      `gorm:"default:cash" json:"payment_method"`
	Notes           string      `json:"notes"`
	Items           []OrderItem `json:"order_items,omitempty"`
}

// OrderItem is a line item snapshot. Name and price are captured at order
// time so historical orders survive later menu edits. Immutable after
// creation.
type OrderItem struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID      uuid.UUID  `gorm:"type:uuid;index" json:"order_id"`
	Order        *Order     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	MenuItemID   *uuid.UUID `gorm:"type:uuid" json:"menu_item_id"`
	MenuItemName string     `json:"menu_item_name"`
	Quantity     int        `json:"quantity"`
	Price        float64    `json:"price"`
	Subtotal     float64    `json:"subtotal"`
}

// BeforeCreate ensures line items receive a UUID.
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// ValidStatus reports whether s is one of the fixed order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobileMoney:
		return true
	}
	return false
}

// CalculateSubtotal sums price x quantity over the given line items.
func CalculateSubtotal(items []OrderItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}
