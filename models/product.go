package models

import (
	"encoding/json"
	"time"

	"slime-shop/utils"
)

type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PriceCents    int64     `json:"-"`
	Images        []string  `json:"images"`
	CategorySlug  string    `json:"category"`
	StockQuantity int       `json:"stock_quantity"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InStock is always derived from the stock count. It is deliberately not a
// stored column so the flag can never drift from the quantity.
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

func (p Product) MarshalJSON() ([]byte, error) {
	type alias Product
	return json.Marshal(struct {
		alias
		Price   float64 `json:"price"`
		InStock bool    `json:"in_stock"`
	}{
		alias:   alias(p),
		Price:   utils.DollarsFromCents(p.PriceCents),
		InStock: p.StockQuantity > 0,
	})
}
