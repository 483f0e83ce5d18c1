package models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}

type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required,min=3"`
	Description   string   `json:"description" binding:"required"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	Images        []string `json:"images"`
	Category      string   `json:"category" binding:"required"`
	StockQuantity *int     `json:"stock_quantity" binding:"omitempty,gte=0"`
	IsActive      *bool    `json:"is_active"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=3"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	Images        []string `json:"images"`
	Category      *string  `json:"category"`
	StockQuantity *int     `json:"stock_quantity" binding:"omitempty,gte=0"`
	IsActive      *bool    `json:"is_active"`
}

type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required,min=2"`
	Slug         string `json:"slug"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder *int   `json:"display_order"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=2"`
	Slug         *string `json:"slug"`
	IsActive     *bool   `json:"is_active"`
	DisplayOrder *int    `json:"display_order"`
}

type ReorderCategoryRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CheckoutRequest is the shipping form; all four fields are required. It
// exists only for the duration of one submission and is never persisted on
// its own.
type CheckoutRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}
