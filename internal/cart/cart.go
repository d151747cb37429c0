// Package cart mirrors the storefront client's cart: an ordered list of
// product snapshots with quantities, plus the checkout summary math.
// Carts are session-scoped values, never persisted server-side.
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"

	"Innovora/internal/catalog"
)

// Free shipping kicks in at the subtotal threshold; below it a flat
// rate applies. Tax is a flat percentage of the subtotal.
var (
	freeShippingAt = decimal.RequireFromString("50.00")
	shippingFlat   = decimal.RequireFromString("9.99")
	taxRate        = decimal.RequireFromString("0.08")
)

type Line struct {
	Product  catalog.Product
	Quantity int
}

type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts qty units of p in the cart, merging with an existing line
// for the same product. Non-positive quantities are ignored.
func (c *Cart) Add(p catalog.Product, qty int) {
	if qty < 1 {
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == p.ID {
			c.lines[i].Quantity += qty
			return
		}
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: qty})
}

// SetQuantity pins a line to qty. Anything below 1 removes the line,
// which is what the client does when quantity is stepped to zero.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty < 1 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Increment(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity++
			return
		}
	}
}

// Decrement steps a line down but never below one unit; removal is an
// explicit action in the UI, not a side effect of decrementing.
func (c *Cart) Decrement(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			if c.lines[i].Quantity > 1 {
				c.lines[i].Quantity--
			}
			return
		}
	}
}

func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) TotalItems() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal sums price times quantity over all lines. A price string
// that does not parse is a corrupt product record, not a user mistake.
func (c *Cart) Subtotal() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range c.lines {
		price, err := decimal.NewFromString(l.Product.Price)
		if err != nil {
			return decimal.Zero, fmt.Errorf("product %s has bad price %q: %w", l.Product.ID, l.Product.Price, err)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total, nil
}

func Shipping(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(freeShippingAt) {
		return decimal.Zero
	}
	return shippingFlat
}

func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(taxRate).Round(2)
}

// Summary is what the cart page shows under the line items.
type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

func (c *Cart) Summarize() (Summary, error) {
	subtotal, err := c.Subtotal()
	if err != nil {
		return Summary{}, err
	}

	shipping := Shipping(subtotal)
	tax := Tax(subtotal)

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}, nil
}
