package warehouse

import (
	"fmt"
	"log"
	"time"

	"warehouse-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	dateLayout   = "2006-01-02"
	xlsxMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	inboundSheet = "Inbound Documents"
	receiptSheet = "Goods Receipts"
)

var (
	inboundHeader = []any{"PO Number", "Vendor", "Date", "Product", "Description", "Qty", "Price", "Total Price"}
	receiptHeader = []any{"Work Order", "Status", "PO Number", "Product", "Description", "Qty"}
)

// buildWorkbook writes header and rows into a single-sheet workbook.
func buildWorkbook(sheet string, header []any, rows [][]any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		f.Close()
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func inboundDocumentRows(docs []models.InboundDocument) [][]any {
	var rows [][]any
	for _, d := range docs {
		for _, it := range d.Items {
			rows = append(rows, []any{
				d.PONumber, d.Vendor, d.Date.Format(dateLayout),
				it.Product, it.ProductDescription, it.Qty, it.Price, it.TotalPrice,
			})
		}
	}
	return rows
}

func goodsReceiptRows(receipts []models.GoodsReceipt) [][]any {
	var rows [][]any
	for _, r := range receipts {
		for _, it := range r.Items {
			rows = append(rows, []any{
				r.WorkOrder, string(r.Status), r.PONumber,
				it.Product, it.ProductDescription, it.Qty,
			})
		}
	}
	return rows
}

func sendWorkbook(c *fiber.Ctx, f *excelize.File, prefix string) error {
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("xlsx write failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Export could not be generated")
	}

	filename := fmt.Sprintf("%s-%s.xlsx", prefix, time.Now().Format(dateLayout))
	c.Set(fiber.HeaderContentType, xlsxMIMEType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}

// GET /api/inbound-documents/export
// One row per ordered item; an empty store still yields a header-only workbook.
func ExportInboundDocumentsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := findInboundDocuments(c.UserContext(), db)
		if err != nil {
			log.Printf("inbound documents query failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Inbound documents could not be listed")
		}

		f, err := buildWorkbook(inboundSheet, inboundHeader, inboundDocumentRows(docs))
		if err != nil {
			log.Printf("xlsx build failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Export could not be generated")
		}
		return sendWorkbook(c, f, "inbound-documents")
	}
}

// GET /api/goods-receipts/export
func ExportGoodsReceiptsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		receipts, err := findGoodsReceipts(c.UserContext(), db)
		if err != nil {
			log.Printf("goods receipts query failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Goods receipts could not be listed")
		}

		f, err := buildWorkbook(receiptSheet, receiptHeader, goodsReceiptRows(receipts))
		if err != nil {
			log.Printf("xlsx build failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Export could not be generated")
		}
		return sendWorkbook(c, f, "goods-receipts")
	}
}
