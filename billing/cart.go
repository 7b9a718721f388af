package billing

import (
	"fmt"
	"sync"

	"pos/models"
	"pos/store"
)

// Cart holds the pending sale. Lines live only in memory: nothing is
// persisted until finalize.
type Cart struct {
	mu    sync.Mutex
	lines []models.CartLine
}

func NewCart() *Cart { return &Cart{} }

// AddLine puts a line in the cart. Adding a product that is already in the
// cart increases that line's quantity instead of creating a second line.
func (c *Cart) AddLine(line models.CartLine) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if line.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", line.Quantity)
	}
	for i := range c.lines {
		if c.lines[i].ProductID == line.ProductID {
			c.lines[i].Quantity += line.Quantity
			return nil
		}
	}
	c.lines = append(c.lines, line)
	return nil
}

// SetQuantity changes a line's quantity in place.
func (c *Cart) SetQuantity(productID int64, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("cart line product=%d: %w", productID, store.ErrNotFound)
}

// Remove drops the line for a product. Absent is a no-op.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.lines[:0]
	for _, l := range c.lines {
		if l.ProductID != productID {
			next = append(next, l)
		}
	}
	c.lines = next
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the cart contents.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
