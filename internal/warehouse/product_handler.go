package warehouse

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const msgNoProducts = "No products found."

type ProductResponse struct {
	ID                 uint    `json:"id"`
	Product            string  `json:"product"`
	ProductDescription string  `json:"product_description"`
	Price              float64 `json:"price"`
	Barcode            string  `json:"barcode"`
	Height             float64 `json:"height"`
	Width              float64 `json:"width"`
	Length             float64 `json:"length"`
}

// GET /api/products
func ListProductsHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := findProducts(c.UserContext(), db)
		if err != nil {
			log.Printf("products query failed: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Products could not be listed")
		}
		if len(products) == 0 {
			return c.JSON(fiber.Map{"message": msgNoProducts})
		}

		res := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			res = append(res, ProductResponse{
				ID:                 p.ID,
				Product:            p.Product,
				ProductDescription: p.ProductDescription,
				Price:              p.Price,
				Barcode:            p.Barcode,
				Height:             p.Height,
				Width:              p.Width,
				Length:             p.Length,
			})
		}
		return c.JSON(res)
	}
}
