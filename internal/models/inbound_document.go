package models

import "time"

// InboundDocument: purchase order sent to a vendor, listing the expected items
type InboundDocument struct {
	ID        uint      `gorm:"primaryKey"`
	PONumber  string    `gorm:"column:po_number;size:50;index;not null"`
	Vendor    string    `gorm:"size:100;not null"`
	Date      time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time

	Items []OrderedItem `gorm:"foreignKey:InboundDocumentID;constraint:OnDelete:CASCADE"`
}

// OrderedItem: line item of an inbound document.
// TotalPrice is whatever the creator supplied; it is not recomputed on read.
type OrderedItem struct {
	ID                 uint    `gorm:"primaryKey"`
	Product            string  `gorm:"size:100;not null"`
	ProductDescription string  `gorm:"size:255"`
	Qty                int     `gorm:"not null"`
	Price              float64 `gorm:"not null"`
	TotalPrice         float64 `gorm:"not null"`
	InboundDocumentID  uint    `gorm:"index;not null"`
}
