package warehouse

import (
	"log"

	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const msgNoGoodsReceipts = "No goods receipts found."

type GoodsReceiptResponse struct {
	ID                uint                       `json:"id"`
	WorkOrder         string                     `json:"work_order"`
	Status            string                     `json:"status"`
	PONumber          string                     `json:"po_number"`
	InboundDocumentID uint                       `json:"inbound_document_id"`
	Items             []GoodsReceiptItemResponse `json:"items"`
}

type GoodsReceiptItemResponse struct {
	ID                 uint   `json:"id"`
	Product            string `json:"product"`
	ProductDescription string `json:"product_description"`
	Qty                int    `json:"qty"`
	GoodsReceiptID     uint   `json:"goods_receipt_id"`
}

func toGoodsReceiptResponse(r models.GoodsReceipt) GoodsReceiptResponse {
	items := make([]GoodsReceiptItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, GoodsReceiptItemResponse{
			ID:                 it.ID,
			Product:            it.Product,
			ProductDescription: it.ProductDescription,
			Qty:                it.Qty,
			GoodsReceiptID:     it.GoodsReceiptID,
		})
	}
	return GoodsReceiptResponse{
		ID:                r.ID,
		WorkOrder:         r.WorkOrder,
		Status:            string(r.Status),
		PONumber:          r.PONumber,
		InboundDocumentID: r.InboundDocumentID,
		Items:             items,
	}
}

// GET /api/goods-receipts
func ListGoodsReceiptsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		receipts, err := findGoodsReceipts(c.UserContext(), db)
		if err != nil {
			log.Printf("goods receipts query failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Goods receipts could not be listed")
		}
		if len(receipts) == 0 {
			return c.JSON(fiber.Map{"message": msgNoGoodsReceipts})
		}

		resp := make([]GoodsReceiptResponse, 0, len(receipts))
		for _, r := range receipts {
			resp = append(resp, toGoodsReceiptResponse(r))
		}
		return c.JSON(resp)
	}
}
