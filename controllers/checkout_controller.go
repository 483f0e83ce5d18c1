package controllers

import (
	"errors"

	"slime-shop/models"
	"slime-shop/services"
	"slime-shop/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkout *services.CheckoutService
	cookie   *utils.CartCookie
}

func NewCheckoutController(checkout *services.CheckoutService, cookie *utils.CartCookie) *CheckoutController {
	return &CheckoutController{checkout: checkout, cookie: cookie}
}

// @Summary Submit checkout
// @Description Submit the shipping form for the session's cart. Dispatches the order by email and clears the cart on success. A failed dispatch preserves the cart for an exact resubmission.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Shipping form"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /api/checkout [post]
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	var form models.CheckoutRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(400, bindError(err))
		return
	}

	cartID, ok := ctrl.cookie.GetCartID(c)
	if !ok {
		c.JSON(409, models.ErrorResponse{Message: "Cart is empty"})
		return
	}

	order, err := ctrl.checkout.Submit(c.Request.Context(), cartID, form)
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		c.JSON(409, models.ErrorResponse{Message: "Cart is empty"})
	case errors.Is(err, services.ErrCheckoutInFlight):
		c.JSON(409, models.ErrorResponse{Message: "Checkout already in progress"})
	case errors.Is(err, services.ErrMailDispatch):
		c.JSON(502, models.ErrorResponse{Message: "Order could not be sent. Your cart is unchanged, please try again."})
	case err != nil:
		c.JSON(503, models.ErrorResponse{Message: "Cart store unavailable", RetryAfter: 30})
	default:
		ctrl.cookie.Clear(c)
		c.JSON(201, gin.H{
			"message":      "Order placed. Payment is collected on delivery.",
			"order_number": order.OrderNumber,
			"total":        utils.DollarsFromCents(order.TotalCents),
		})
	}
}
