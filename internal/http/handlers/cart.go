package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sumitk238/shopping-cart/internal/http/response"
	pkgerrors "github.com/sumitk238/shopping-cart/internal/pkg/errors"
	"github.com/sumitk238/shopping-cart/internal/pkg/logger"
	"github.com/sumitk238/shopping-cart/internal/services"
)

type CartHandler struct {
	log            *logger.Logger
	cartService    services.CartService
	userService    services.UserService
	productService services.ProductService
	itemMaxAllowed int
}

func NewCartHandler(log *logger.Logger, cartService services.CartService, userService services.UserService, productService services.ProductService, itemMaxAllowed int) *CartHandler {
	return &CartHandler{
		log:            log.With("handler", "CartHandler"),
		cartService:    cartService,
		userService:    userService,
		productService: productService,
		itemMaxAllowed: itemMaxAllowed,
	}
}

// GetCartDetailsForUser returns all items in the user's cart with the
// cumulative cost.
func (h *CartHandler) GetCartDetailsForUser(c *gin.Context) {
	userID, ok := h.pathInt(c, "userId")
	if !ok {
		return
	}
	h.log.Debug("Fetching full cart", "user_id", userID)
	if !h.validateUser(c, userID) {
		return
	}

	details, err := h.cartService.GetCartDetails(c.Request.Context(), userID)
	if err != nil {
		h.respondCartError(c, err)
		return
	}
	response.RespondOK(c, details)
}

// GetCountOfItemInCart returns the quantity of the given product in the
// user's cart, zero if not present.
func (h *CartHandler) GetCountOfItemInCart(c *gin.Context) {
	userID, productID, ok := h.pathUserAndProduct(c)
	if !ok {
		return
	}
	h.log.Debug("Fetching count of product", "user_id", userID, "product_id", productID)
	if !h.validateUserAndProduct(c, userID, productID) {
		return
	}

	count, err := h.cartService.CountItem(c.Request.Context(), userID, productID)
	if err != nil {
		h.respondCartError(c, err)
		return
	}
	response.RespondOK(c, count)
}

// AddItemToCart adds a new item to the cart. Quantity must be within
// [1, itemMaxAllowed] and the item must not already be present.
func (h *CartHandler) AddItemToCart(c *gin.Context) {
	userID, productID, ok := h.pathUserAndProduct(c)
	if !ok {
		return
	}
	quantity, ok := h.queryInt(c, "quantity")
	if !ok {
		return
	}
	h.log.Debug("Adding product to cart", "user_id", userID, "product_id", productID, "quantity", quantity)

	if quantity <= 0 || quantity > h.itemMaxAllowed {
		response.RespondProblem(c, http.StatusBadRequest,
			fmt.Sprintf("Quantity should be within 1 and %d !!", h.itemMaxAllowed))
		return
	}
	if !h.validateUserAndProduct(c, userID, productID) {
		return
	}

	if err := h.cartService.AddItem(c.Request.Context(), userID, productID, quantity); err != nil {
		h.respondCartError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"status": "added"})
}

// UpdateItemInCart applies a signed change to the item's quantity. A change
// driving the quantity to exactly zero removes the item.
func (h *CartHandler) UpdateItemInCart(c *gin.Context) {
	userID, productID, ok := h.pathUserAndProduct(c)
	if !ok {
		return
	}
	changed, ok := h.queryInt(c, "changed")
	if !ok {
		return
	}
	h.log.Debug("Updating product count", "user_id", userID, "product_id", productID, "changed", changed)

	if changed == 0 {
		response.RespondProblem(c, http.StatusBadRequest, "Changed should not be zero !!")
		return
	}
	if !h.validateUserAndProduct(c, userID, productID) {
		return
	}

	if err := h.cartService.UpdateItem(c.Request.Context(), userID, productID, changed); err != nil {
		h.respondCartError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"status": "updated"})
}

// DeleteItemFromCart clears the given product from the user's cart.
func (h *CartHandler) DeleteItemFromCart(c *gin.Context) {
	userID, productID, ok := h.pathUserAndProduct(c)
	if !ok {
		return
	}
	h.log.Debug("Deleting product from cart", "user_id", userID, "product_id", productID)
	if !h.validateUserAndProduct(c, userID, productID) {
		return
	}

	if err := h.cartService.DeleteItem(c.Request.Context(), userID, productID); err != nil {
		h.respondCartError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"status": "deleted"})
}

func (h *CartHandler) pathInt(c *gin.Context, name string) (int, bool) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.RespondProblem(c, http.StatusBadRequest, fmt.Sprintf("%s must be an integer", name))
		return 0, false
	}
	return value, true
}

func (h *CartHandler) pathUserAndProduct(c *gin.Context) (int, int, bool) {
	userID, ok := h.pathInt(c, "userId")
	if !ok {
		return 0, 0, false
	}
	productID, ok := h.pathInt(c, "productId")
	if !ok {
		return 0, 0, false
	}
	return userID, productID, true
}

func (h *CartHandler) queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		response.RespondProblem(c, http.StatusBadRequest, fmt.Sprintf("query parameter %s is required", name))
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		response.RespondProblem(c, http.StatusBadRequest, fmt.Sprintf("query parameter %s must be an integer", name))
		return 0, false
	}
	return value, true
}

func (h *CartHandler) validateUser(c *gin.Context, userID int) bool {
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		h.respondCartError(c, err)
		return false
	}
	if user == nil {
		response.RespondProblem(c, http.StatusBadRequest,
			fmt.Sprintf("User corresponding to id %d doesn't exist !!", userID))
		return false
	}
	return true
}

func (h *CartHandler) validateUserAndProduct(c *gin.Context, userID, productID int) bool {
	if !h.validateUser(c, userID) {
		return false
	}
	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		h.respondCartError(c, err)
		return false
	}
	if product == nil {
		response.RespondProblem(c, http.StatusBadRequest,
			fmt.Sprintf("Product corresponding to id %d doesn't exist !!", productID))
		return false
	}
	return true
}

// respondCartError maps caller-correctable failures to 400 with the failure
// reason; everything else is logged and masked behind a generic 500 body.
func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrDuplicateItem),
		errors.Is(err, pkgerrors.ErrItemNotFound),
		errors.Is(err, pkgerrors.ErrQuantityOutOfRange):
		response.RespondProblem(c, http.StatusBadRequest, err.Error())
	default:
		h.log.Error("Error processing request", "error", err,
			"method", c.Request.Method, "path", c.Request.URL.Path)
		response.RespondInternalError(c)
	}
}
