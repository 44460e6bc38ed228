package models

// Product: catalog entry, not linked to documents or receipts
type Product struct {
	ID                 uint    `gorm:"primaryKey"`
	Product            string  `gorm:"size:100;not null;unique"`
	ProductDescription string  `gorm:"size:255"`
	Price              float64 `gorm:"not null;default:0"`
	Barcode            string  `gorm:"size:50;index"`
	Height             float64 // cm
	Width              float64 // cm
	Length             float64 // cm
}
