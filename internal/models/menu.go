package models

import "github.com/google/uuid"

// MenuCategory groups menu items for display.
type MenuCategory struct {
	BaseModel
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	DisplayOrder int        `gorm:"default:0" json:"display_order"`
	Items        []MenuItem `json:"items,omitempty"`
}

// MenuItem is a purchasable dish on the menu.
type MenuItem struct {
	BaseModel
	CategoryID  *uuid.UUID    `gorm:"type:uuid;index" json:"category_id"`
	Category    *MenuCategory `gorm:"constraint:OnDelete:CASCADE" json:"category,omitempty"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	ImageURL    string        `json:"image_url"`
	IsAvailable bool          `gorm:"default:true" json:"is_available"`
	IsFeatured  bool          `gorm:"default:false" json:"is_featured"`
}
