package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"pos/billing"
	"pos/models"
)

func (h *Handler) GetCart(c *fiber.Ctx) error {
	lines := h.Cart.Lines()
	discount := decimal.Zero
	if q := c.Query("discount"); q != "" {
		d, err := decimal.NewFromString(q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid discount"})
		}
		discount = d
	}
	return c.JSON(fiber.Map{
		"lines":  lines,
		"totals": billing.Compute(lines, discount),
	})
}

// AddCartItem resolves the product and snapshots its current price and tax
// into a cart line. Stock is checked at checkout, not here.
func (h *Handler) AddCartItem(c *fiber.Ctx) error {
	var input struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	p, err := h.Repos.Products.ByID(input.ProductID)
	if err != nil {
		return fail(c, err)
	}
	line := models.CartLine{
		ProductID:  p.ID,
		Name:       p.Name,
		Barcode:    p.Barcode,
		Quantity:   input.Quantity,
		UnitPrice:  p.SellPrice,
		TaxPercent: p.TaxPercent,
		Unit:       p.Unit,
	}
	if err := h.Cart.AddLine(line); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Added to cart", "lines": h.Cart.Lines()})
}

func (h *Handler) UpdateCartItem(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("product_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if err := h.Cart.SetQuantity(productID, input.Quantity); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Cart updated", "lines": h.Cart.Lines()})
}

func (h *Handler) RemoveCartItem(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Params("product_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	h.Cart.Remove(productID)
	return c.JSON(fiber.Map{"message": "Removed from cart", "lines": h.Cart.Lines()})
}

func (h *Handler) ClearCart(c *fiber.Ctx) error {
	h.Cart.Clear()
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}

// Checkout finalizes the bill: validates stock for every line, decrements
// inventory, and appends the immutable sale record.
func (h *Handler) Checkout(c *fiber.Ctx) error {
	var input struct {
		DiscountPercent decimal.Decimal `json:"discountPercent"`
		PaymentMethod   string          `json:"paymentMethod"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = "cash"
	}

	txn, err := h.Billing.Finalize(h.Cart, input.DiscountPercent, input.PaymentMethod)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Sale finalized",
		"transaction": txn,
	})
}
