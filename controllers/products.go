package controllers

import (
	"bytes"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"pos/csvio"
	"pos/models"
)

func (h *Handler) GetProducts(c *fiber.Ctx) error {
	products, err := h.Repos.Products.All()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}

func (h *Handler) GetProductByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	p, err := h.Repos.Products.ByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(p)
}

// GetProductByBarcode backs the scanner flow: an exact match or a 404 that
// tells the UI to offer creating the product.
func (h *Handler) GetProductByBarcode(c *fiber.Ctx) error {
	p, err := h.Repos.Products.ByBarcode(c.Params("code"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) CreateProduct(c *fiber.Ctx) error {
	var p models.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if p.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	if p.QuantityOnHand < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "quantityOnHand must not be negative"})
	}

	res, err := h.Repos.Products.Add(p)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created",
		"id":      res.ID,
		"durable": res.Durable,
	})
}

func (h *Handler) UpdateProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var p models.Product
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	p.ID = id
	if p.QuantityOnHand < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "quantityOnHand must not be negative"})
	}

	res, err := h.Repos.Products.Update(p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "durable": res.Durable})
}

func (h *Handler) DeleteProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	res, err := h.Repos.Products.Delete(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted", "durable": res.Durable})
}

func (h *Handler) ExportProductsCSV(c *fiber.Ctx) error {
	products, err := h.Repos.Products.All()
	if err != nil {
		return fail(c, err)
	}
	var buf bytes.Buffer
	if err := csvio.ExportProducts(&buf, products); err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Send(buf.Bytes())
}

func (h *Handler) ImportProductsCSV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}
	f, err := file.Open()
	if err != nil {
		return fail(c, err)
	}
	defer f.Close()

	added, err := csvio.ImportProducts(f, h.Repos.Products)
	if err != nil {
		h.Log.Warn("csv import aborted", zap.Int("added", added), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "added": added})
	}
	return c.JSON(fiber.Map{"message": "Products imported", "added": added})
}
