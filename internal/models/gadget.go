package models

import "time"

// GadgetStockStatus defines the availability of a gadget listing.
type GadgetStockStatus string

const (
	// GadgetInStock indicates the gadget is available.
	GadgetInStock GadgetStockStatus = "in_stock"
	// GadgetOutOfStock indicates the gadget is unavailable.
	GadgetOutOfStock GadgetStockStatus = "out_of_stock"
	// GadgetPreOrder indicates the gadget can be pre-ordered.
	GadgetPreOrder GadgetStockStatus = "pre_order"
)

// Gadget represents a product listing on the marketing site.
type Gadget struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Name        string            `gorm:"size:255;not null" json:"name"`
	Description string            `gorm:"type:text" json:"description"`
	Price       float64           `gorm:"not null;default:0" json:"price"`
	ImageURL    string            `json:"image_url"`
	Category    string            `gorm:"size:120;index" json:"category"`
	StockStatus GadgetStockStatus `gorm:"type:varchar(20);not null;default:'in_stock'" json:"stock_status"`
	IsFeatured  bool              `gorm:"not null;default:false" json:"is_featured"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Gadget) TableName() string {
	return "gadgets"
}
