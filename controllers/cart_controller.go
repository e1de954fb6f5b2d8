package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"dukicks/config"
	"dukicks/middleware"
	"dukicks/models"
	"dukicks/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

// @Summary Get cart
// @Description Line items and summary of the session cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	state, err := ctrl.Carts.State(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		config.Log.Error("failed to load cart", zap.String("session_id", middleware.SessionID(c)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart retrieved", Data: state})
}

// @Summary Add product to cart
// @Description Adds one unit; an existing line grows by one up to 99
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AddCartItemRequest true "Product and size"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	state, found, err := ctrl.Carts.AddProduct(c.Request.Context(), middleware.SessionID(c), req.ProductID, req.Size)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}
	if err != nil {
		writeCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product added to cart", Data: state})
}

// @Summary Set line quantity
// @Description Quantity must be a whole number between 1 and 99
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request", Error: err.Error()})
		return
	}

	quantity, err := services.ParseQuantity(*req.Quantity)
	if err != nil {
		config.Log.Warn("quantity update rejected",
			zap.String("session_id", middleware.SessionID(c)),
			zap.Int("product_id", productID),
			zap.Float64("quantity", *req.Quantity))
		writeCartError(c, err)
		return
	}

	state, err := ctrl.Carts.Update(c.Request.Context(), middleware.SessionID(c), func(store *services.CartStore) error {
		return store.SetQuantity(productID, quantity)
	})
	if err != nil {
		writeCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Quantity updated", Data: state})
}

// @Summary Remove product from cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	productID, ok := productIDParam(c)
	if !ok {
		return
	}
	state, err := ctrl.Carts.Update(c.Request.Context(), middleware.SessionID(c), func(store *services.CartStore) error {
		store.RemoveFromCart(productID)
		return nil
	})
	if err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Product removed from cart", Data: state})
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	state, err := ctrl.Carts.Update(c.Request.Context(), middleware.SessionID(c), func(store *services.CartStore) error {
		store.ClearCart()
		return nil
	})
	if err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart cleared", Data: state})
}

func productIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid product ID"})
		return 0, false
	}
	return id, true
}

func writeCartError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	var cartErr *services.CartError
	switch {
	case errors.As(err, &cartErr) && cartErr.Code == services.StatusFailedPrecondition:
		status = http.StatusNotFound
	case errors.As(err, &cartErr), errors.Is(err, services.ErrInvalidQuantity):
		status = http.StatusUnprocessableEntity
	}

	message := "Cart update rejected"
	if status == http.StatusInternalServerError {
		message = "Failed to update cart"
		config.Log.Error("failed to update cart", zap.String("session_id", middleware.SessionID(c)), zap.Error(err))
	}
	c.JSON(status, models.ErrorResponse{Success: false, Message: message, Error: err.Error()})
}
