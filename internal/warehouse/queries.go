package warehouse

import (
	"context"

	"warehouse-backend/internal/models"

	"gorm.io/gorm"
)

// Children are preloaded in a second query per table instead of one per parent row.

func findInboundDocuments(ctx context.Context, db *gorm.DB) ([]models.InboundDocument, error) {
	var docs []models.InboundDocument
	err := db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Order("id ASC").
		Find(&docs).Error
	return docs, err
}

func findGoodsReceipts(ctx context.Context, db *gorm.DB) ([]models.GoodsReceipt, error) {
	var receipts []models.GoodsReceipt
	err := db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Order("id ASC").
		Find(&receipts).Error
	return receipts, err
}

func findProducts(ctx context.Context, db *gorm.DB) ([]models.Product, error) {
	var products []models.Product
	err := db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}
