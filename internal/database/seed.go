package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"warehouse-backend/internal/models"

	"gorm.io/gorm"
)

type seedLine struct {
	product     string
	description string
	qty         int
	price       float64
	barcode     string
}

var seedLines = []seedLine{
	{product: "Product C", description: "Description of Product C", qty: 15, price: 12.5, barcode: "8690000000011"},
	{product: "Product D", description: "Description of Product D", qty: 10, price: 20, barcode: "8690000000028"},
}

const (
	seedPONumber = "PO12346"
	seedVendor   = "Vendor B"
)

// SeedIfEmpty inserts one sample inbound document, its goods receipt and the
// matching catalog products when no inbound document exists yet.
// It reports whether anything was inserted.
func SeedIfEmpty(ctx context.Context, db *gorm.DB) (bool, error) {
	db = db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.InboundDocument{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("inbound documents could not be counted: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		doc := models.InboundDocument{
			PONumber: seedPONumber,
			Vendor:   seedVendor,
			Date:     time.Now().UTC().Truncate(24 * time.Hour),
		}
		for _, l := range seedLines {
			doc.Items = append(doc.Items, models.OrderedItem{
				Product:            l.product,
				ProductDescription: l.description,
				Qty:                l.qty,
				Price:              l.price,
				TotalPrice:         models.LineTotal(l.qty, l.price),
			})
		}
		if err := tx.Create(&doc).Error; err != nil {
			return fmt.Errorf("inbound document: %w", err)
		}

		receipt := models.GoodsReceipt{
			WorkOrder:         models.NewWorkOrder(),
			Status:            models.StatusNotStarted,
			PONumber:          doc.PONumber,
			InboundDocumentID: doc.ID,
		}
		for _, l := range seedLines {
			receipt.Items = append(receipt.Items, models.GoodsReceiptItem{
				Product:            l.product,
				ProductDescription: l.description,
				Qty:                l.qty,
			})
		}
		if err := tx.Omit("InboundDocument").Create(&receipt).Error; err != nil {
			return fmt.Errorf("goods receipt: %w", err)
		}

		for _, l := range seedLines {
			var existing models.Product
			err := tx.Where("product = ?", l.product).First(&existing).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product lookup: %w", err)
			}
			p := models.Product{
				Product:            l.product,
				ProductDescription: l.description,
				Price:              l.price,
				Barcode:            l.barcode,
			}
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("product: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed failed: %w", err)
	}

	log.Printf("Seeded inbound document %s with %d items.", seedPONumber, len(seedLines))
	return true, nil
}
