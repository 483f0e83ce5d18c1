package controllers

import (
	"errors"
	"strconv"

	"slime-shop/models"
	"slime-shop/services"
	"slime-shop/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartController struct {
	carts  *services.CartService
	cookie *utils.CartCookie
}

func NewCartController(carts *services.CartService, cookie *utils.CartCookie) *CartController {
	return &CartController{carts: carts, cookie: cookie}
}

// cartID resolves the session's cart id from the signed cookie, minting a
// fresh id (and cookie) for first-time visitors.
func (ctrl *CartController) cartID(c *gin.Context) string {
	if id, ok := ctrl.cookie.GetCartID(c); ok {
		return id
	}
	id := uuid.NewString()
	ctrl.cookie.Set(c, id)
	return id
}

// @Summary Get cart
// @Description Get the session's cart with derived count and total
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Cart
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.carts.Get(c.Request.Context(), ctrl.cartID(c))
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Cart store unavailable", RetryAfter: 30})
		return
	}
	c.JSON(200, cart)
}

// @Summary Add cart item
// @Description Add a product to the cart; adding an existing product increments its quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.Cart
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, bindError(err))
		return
	}

	cart, err := ctrl.carts.Add(c.Request.Context(), ctrl.cartID(c), req.ProductID, req.Quantity)
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(400, models.ErrorResponse{Message: "Product not found or inactive"})
		return
	}
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Cart store unavailable", RetryAfter: 30})
		return
	}

	c.JSON(200, cart)
}

// @Summary Update cart item quantity
// @Description Set a line's quantity; a quantity below 1 removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param productID path int true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Cart
// @Failure 400 {object} models.ErrorResponse
// @Router /api/cart/items/{productID} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productID"))
	if err != nil || productID <= 0 {
		c.JSON(400, models.ErrorResponse{Message: "Invalid product ID"})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, bindError(err))
		return
	}

	cart, err := ctrl.carts.UpdateQuantity(c.Request.Context(), ctrl.cartID(c), productID, *req.Quantity)
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Cart store unavailable", RetryAfter: 30})
		return
	}

	c.JSON(200, cart)
}

// @Summary Remove cart item
// @Description Remove a line from the cart; removing an absent line is a no-op
// @Tags Cart
// @Produce json
// @Param productID path int true "Product ID"
// @Success 200 {object} models.Cart
// @Router /api/cart/items/{productID} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productID"))
	if err != nil || productID <= 0 {
		c.JSON(400, models.ErrorResponse{Message: "Invalid product ID"})
		return
	}

	cart, err := ctrl.carts.Remove(c.Request.Context(), ctrl.cartID(c), productID)
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Cart store unavailable", RetryAfter: 30})
		return
	}

	c.JSON(200, cart)
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Cart
// @Router /api/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart, err := ctrl.carts.Clear(c.Request.Context(), ctrl.cartID(c))
	if err != nil {
		c.JSON(503, models.ErrorResponse{Message: "Cart store unavailable", RetryAfter: 30})
		return
	}

	c.JSON(200, cart)
}
