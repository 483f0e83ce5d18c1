package models

import (
	"encoding/json"
	"time"

	"slime-shop/utils"
)

// CartLine is one entry in a cart: a product id, its quantity and the unit
// price captured when the product was added.
type CartLine struct {
	ProductID      int    `json:"product_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	ImageURL       string `json:"image_url"`
}

func (l CartLine) MarshalJSON() ([]byte, error) {
	type alias CartLine
	return json.Marshal(struct {
		alias
		UnitPrice float64 `json:"unit_price"`
		Subtotal  float64 `json:"subtotal"`
	}{
		alias:     alias(l),
		UnitPrice: utils.DollarsFromCents(l.UnitPriceCents),
		Subtotal:  utils.DollarsFromCents(l.UnitPriceCents * int64(l.Quantity)),
	})
}

// Cart is an ordered collection of lines keyed by product id. Lines keep
// insertion order; a product id appears at most once.
type Cart struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func NewCart(id string) *Cart {
	return &Cart{ID: id, Lines: []CartLine{}, UpdatedAt: time.Now()}
}

// AddItem merges the line into the cart: an existing product id has its
// quantity incremented, a new one is appended. Quantities below 1 count as 1.
// It cannot fail.
func (c *Cart) AddItem(line CartLine, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == line.ProductID {
			c.Lines[i].Quantity += qty
			c.touch()
			return
		}
	}
	line.Quantity = qty
	c.Lines = append(c.Lines, line)
	c.touch()
}

// RemoveItem deletes the line with the given product id. Removing an absent
// id is a no-op, not an error.
func (c *Cart) RemoveItem(productID int) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.touch()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity. A quantity below 1 removes the
// line entirely; a zero-quantity line never survives. Unknown ids are a
// no-op.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			c.touch()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Lines = c.Lines[:0]
	c.touch()
}

// Count is the total number of units across all lines.
func (c *Cart) Count() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// TotalCents is the exact sum of unit price times quantity over all lines.
// Totals stay in integer cents; rounding to dollars happens only at
// serialization.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.UnitPriceCents * int64(l.Quantity)
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}

func (c Cart) MarshalJSON() ([]byte, error) {
	type alias Cart
	return json.Marshal(struct {
		alias
		Count int     `json:"count"`
		Total float64 `json:"total"`
	}{
		alias: alias(c),
		Count: c.Count(),
		Total: utils.DollarsFromCents(c.TotalCents()),
	})
}
