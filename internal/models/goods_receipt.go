package models

import "time"

type ReceiptStatus string

const (
	StatusNotStarted ReceiptStatus = "not started"
	StatusInProgress ReceiptStatus = "in progress"
	StatusCompleted  ReceiptStatus = "completed"
)

// GoodsReceipt: confirms physical arrival of items against an inbound document
type GoodsReceipt struct {
	ID                uint          `gorm:"primaryKey"`
	WorkOrder         string        `gorm:"size:20;not null;uniqueIndex"`
	Status            ReceiptStatus `gorm:"size:20;not null;default:'not started'"`
	PONumber          string        `gorm:"column:po_number;size:50;index;not null"`
	InboundDocumentID uint          `gorm:"index;not null"`
	InboundDocument   InboundDocument
	CreatedAt         time.Time

	Items []GoodsReceiptItem `gorm:"foreignKey:GoodsReceiptID;constraint:OnDelete:CASCADE"`
}

// GoodsReceiptItem: received quantity of one product
type GoodsReceiptItem struct {
	ID                 uint   `gorm:"primaryKey"`
	Product            string `gorm:"size:100;not null"`
	ProductDescription string `gorm:"size:255"`
	Qty                int    `gorm:"not null"`
	GoodsReceiptID     uint   `gorm:"index;not null"`
}
