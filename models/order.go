package models

import (
	"fmt"
	"time"
)

// Order statuses. Wire values keep the space in "In Progress" because the
// KDS clients match on the display string.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusReady      = "Ready"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

const (
	PaymentCash   = "Cash"
	PaymentCard   = "Card/Transfer"
	PaymentMobile = "Mobile Money"
	PaymentMixed  = "Mixed"
)

// ActiveStatuses are the statuses a ticket can hold while it is still on
// somebody's display.
var ActiveStatuses = []string{StatusPending, StatusInProgress, StatusReady}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidPaymentMethod reports whether m is a known payment method.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentMobile, PaymentMixed:
		return true
	}
	return false
}

// ValidationError marks a client-caused persistence rejection so handlers
// can answer 400 instead of 500.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderNumber   int64       `gorm:"uniqueIndex;not null" json:"orderNumber"`
	WaitressID    uint        `gorm:"not null;index" json:"-"`
	Waitress      *User       `gorm:"foreignKey:WaitressID" json:"waitress,omitempty"`
	Items         []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	TotalPrice    float64     `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	Status        string      `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	PrepStation   string      `gorm:"type:varchar(50);not null" json:"prepStation"`
	PaymentMethod *string     `gorm:"type:varchar(20)" json:"paymentMethod,omitempty"`
	AmountPaid    *float64    `gorm:"type:decimal(10,2)" json:"amountPaid,omitempty"`
	Tip           float64     `gorm:"type:decimal(10,2);default:0" json:"tip"`
	CreatedAt     time.Time   `gorm:"not null;index" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updatedAt"`
}

type OrderItem struct {
	ID             uint             `gorm:"primaryKey" json:"-"`
	OrderID        uint             `gorm:"not null;index" json:"-"`
	MenuItemID     uint             `gorm:"not null" json:"menuItem"`
	NameAm         string           `gorm:"type:varchar(255);not null" json:"name_am"`
	NameEn         string           `gorm:"type:varchar(255)" json:"name_en,omitempty"`
	Quantity       int              `gorm:"not null" json:"quantity"`
	Price          float64          `gorm:"type:decimal(10,2);not null" json:"price"`
	SelectedAddons []OrderItemAddon `gorm:"foreignKey:OrderItemID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"selectedAddons"`
}

type OrderItemAddon struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	OrderItemID uint    `gorm:"not null;index" json:"-"`
	NameAm      string  `gorm:"type:varchar(255);not null" json:"name_am"`
	NameEn      string  `gorm:"type:varchar(255)" json:"name_en,omitempty"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
}

// Validate checks the invariants an order must satisfy before it is
// persisted. The total price is trusted as sent by the caller.
func (o *Order) Validate() error {
	if o.WaitressID == 0 {
		return &ValidationError{Msg: "an order must belong to a waitress"}
	}
	if o.PrepStation == "" {
		return &ValidationError{Msg: "an order must be assigned to a preparation station"}
	}
	if len(o.Items) == 0 {
		return &ValidationError{Msg: "an order must contain at least one item"}
	}
	for i, item := range o.Items {
		if item.MenuItemID == 0 {
			return &ValidationError{Msg: fmt.Sprintf("item %d is missing its menu item reference", i)}
		}
		if item.NameAm == "" {
			return &ValidationError{Msg: fmt.Sprintf("item %d is missing its Amharic name", i)}
		}
		if item.Quantity < 1 {
			return &ValidationError{Msg: fmt.Sprintf("item %d has quantity %d, must be at least 1", i, item.Quantity)}
		}
	}
	if o.TotalPrice < 0 {
		return &ValidationError{Msg: "total price must not be negative"}
	}
	return nil
}
