package warehouse

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"warehouse-backend/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readSheet(t *testing.T, body []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestExportInboundDocuments(t *testing.T) {
	db := setupTestDB(t)
	_, err := database.SeedIfEmpty(context.Background(), db)
	require.NoError(t, err)

	resp, body := get(t, newTestApp(db), "/api/inbound-documents/export")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxMIMEType, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "inbound-documents-")

	rows := readSheet(t, body, inboundSheet)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"PO Number", "Vendor", "Date", "Product", "Description", "Qty", "Price", "Total Price"}, rows[0])
	assert.Equal(t, "PO12346", rows[1][0])
	assert.Equal(t, "Vendor B", rows[1][1])
	assert.Equal(t, "15", rows[1][5])
	assert.Equal(t, "10", rows[2][5])
}

func TestExportGoodsReceiptsEmptyStoreHasHeaderOnly(t *testing.T) {
	resp, body := get(t, newTestApp(setupTestDB(t)), "/api/goods-receipts/export")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rows := readSheet(t, body, receiptSheet)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Work Order", "Status", "PO Number", "Product", "Description", "Qty"}, rows[0])
}

func TestExportGoodsReceipts(t *testing.T) {
	db := setupTestDB(t)
	_, err := database.SeedIfEmpty(context.Background(), db)
	require.NoError(t, err)

	_, body := get(t, newTestApp(db), "/api/goods-receipts/export")
	rows := readSheet(t, body, receiptSheet)
	require.Len(t, rows, 3)
	assert.Regexp(t, `^GR-[0-9a-f]{8}$`, rows[1][0])
	assert.Equal(t, "not started", rows[1][1])
	assert.Equal(t, "Product C", rows[1][3])
}
