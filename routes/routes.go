package routes

import (
	"github.com/gofiber/fiber/v2"

	"pos/controllers"
	"pos/middleware"
)

func RegisterRoutes(app *fiber.App, h *controllers.Handler) {
	auth := middleware.Protected(h.Cfg.JWTSecret)

	// login
	app.Post("/login", h.Login)

	// products
	app.Get("/products", h.GetProducts)
	app.Get("/products/export/csv", auth, h.ExportProductsCSV)
	app.Post("/products/import/csv", auth, h.ImportProductsCSV)
	app.Get("/products/barcode/:code", h.GetProductByBarcode)
	app.Get("/products/:id", h.GetProductByID)
	app.Post("/products", auth, h.CreateProduct)
	app.Put("/products/:id", auth, h.UpdateProduct)
	app.Delete("/products/:id", auth, h.DeleteProduct)

	// expenses
	app.Get("/expenses", h.GetExpenses)
	app.Get("/expenses/range", h.GetExpensesByRange)
	app.Post("/expenses", auth, h.CreateExpense)
	app.Delete("/expenses/:id", auth, h.DeleteExpense)

	// sales (immutable: read-only routes)
	app.Get("/sales", h.GetSales)
	app.Get("/sales/range", h.GetSalesByRange)
	app.Get("/sales/:id", h.GetSaleByID)

	// pos cart + checkout
	app.Get("/cart", h.GetCart)
	app.Post("/cart/items", h.AddCartItem)
	app.Put("/cart/items/:product_id", h.UpdateCartItem)
	app.Delete("/cart/items/:product_id", h.RemoveCartItem)
	app.Delete("/cart", h.ClearCart)
	app.Post("/checkout", h.Checkout)

	// storage
	app.Get("/storage/status", h.GetStorageStatus)
	app.Post("/storage/folder", auth, h.SetStorageFolder)
	app.Get("/storage/export", auth, h.ExportBundle)
	app.Post("/storage/import", auth, h.ImportBundle)
}
