package models

import "time"

type OrderItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	Order      Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint      `gorm:"not null;index" json:"menu_item_id"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OrderItemRequest captures the price at order time; the stored price never
// follows later menu item price changes.
type OrderItemRequest struct {
	OrderID    int64   `json:"order_id"`
	MenuItemID int64   `json:"menu_item_id"`
	Quantity   int64   `json:"quantity"`
	Price      float64 `json:"price"`
}

type OrderItemPatch struct {
	Quantity *int64   `json:"quantity"`
	Price    *float64 `json:"price"`
}

// OrderItemWithMenu joins an order item with its menu item details.
type OrderItemWithMenu struct {
	ID              uint    `json:"id"`
	OrderID         uint    `json:"order_id"`
	MenuItemID      uint    `json:"menu_item_id"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	ItemName        string  `json:"item_name"`
	ItemDescription string  `json:"item_description"`
}

// PopularItem is an aggregate row: how often a menu item has been ordered.
type PopularItem struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	TotalOrdered int64  `json:"total_ordered"`
}
