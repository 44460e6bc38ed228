package warehouse

import (
	"log"

	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const msgNoInboundDocuments = "No inbound documents found."

type InboundDocumentResponse struct {
	ID       uint                  `json:"id"`
	PONumber string                `json:"po_number"`
	Vendor   string                `json:"vendor"`
	Date     string                `json:"date"`
	Items    []OrderedItemResponse `json:"items"`
}

type OrderedItemResponse struct {
	ID                 uint    `json:"id"`
	Product            string  `json:"product"`
	ProductDescription string  `json:"product_description"`
	Qty                int     `json:"qty"`
	Price              float64 `json:"price"`
	TotalPrice         float64 `json:"total_price"`
	InboundDocumentID  uint    `json:"inbound_document_id"`
}

func toInboundDocumentResponse(d models.InboundDocument) InboundDocumentResponse {
	items := make([]OrderedItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, OrderedItemResponse{
			ID:                 it.ID,
			Product:            it.Product,
			ProductDescription: it.ProductDescription,
			Qty:                it.Qty,
			Price:              it.Price,
			TotalPrice:         it.TotalPrice,
			InboundDocumentID:  it.InboundDocumentID,
		})
	}
	return InboundDocumentResponse{
		ID:       d.ID,
		PONumber: d.PONumber,
		Vendor:   d.Vendor,
		Date:     d.Date.Format(dateLayout),
		Items:    items,
	}
}

// GET /api/inbound-documents
// An empty table answers 200 with a message body, not an empty array.
func ListInboundDocumentsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := findInboundDocuments(c.UserContext(), db)
		if err != nil {
			log.Printf("inbound documents query failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Inbound documents could not be listed")
		}
		if len(docs) == 0 {
			return c.JSON(fiber.Map{"message": msgNoInboundDocuments})
		}

		resp := make([]InboundDocumentResponse, 0, len(docs))
		for _, d := range docs {
			resp = append(resp, toInboundDocumentResponse(d))
		}
		return c.JSON(resp)
	}
}
