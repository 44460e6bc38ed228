package warehouse

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RegisterRoutes mounts the read-only warehouse endpoints on the /api group.
func RegisterRoutes(api fiber.Router, db *gorm.DB) {
	api.Get("/inbound-documents", ListInboundDocumentsHandler(db))
	api.Get("/inbound-documents/export", ExportInboundDocumentsHandler(db))
	api.Get("/goods-receipts", ListGoodsReceiptsHandler(db))
	api.Get("/goods-receipts/export", ExportGoodsReceiptsHandler(db))
	api.Get("/products", ListProductsHandler(db))
}
