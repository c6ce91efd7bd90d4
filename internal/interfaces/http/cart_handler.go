package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/brewflow-pos/internal/application/dto"
	"github.com/jhoicas/brewflow-pos/internal/application/pos"
	"github.com/jhoicas/brewflow-pos/internal/domain"
)

// CartHandler maneja la orden en curso del terminal (protegido).
// La sesión de carrito es el usuario autenticado: un carrito por cajero,
// sin compartición entre terminales.
type CartHandler struct {
	uc            *pos.CartUseCase
	defaultBranch string
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *pos.CartUseCase, defaultBranch string) *CartHandler {
	return &CartHandler{uc: uc, defaultBranch: defaultBranch}
}

// Get godoc
// @Summary      Orden en curso
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get(GetUserID(c)))
}

// AddItem godoc
// @Summary      Agregar una unidad de un producto a la orden
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddItemRequest  true  "Producto a agregar"
// @Success      200   {object}  dto.CartResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.AddItem(GetUserID(c), in.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Fijar la cantidad de una línea (menor a 1 la elimina)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateQuantityRequest  true  "Cantidad nueva"
// @Success      200        {object}  dto.CartResponse
// @Router       /api/cart/items/{productId} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	var in dto.UpdateQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Un productId ausente del carrito es no-op por política: la UI puede ir atrasada.
	return c.JSON(h.uc.UpdateQuantity(GetUserID(c), productID, in.Quantity))
}

// RemoveItem godoc
// @Summary      Eliminar una línea de la orden
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {object}  dto.CartResponse
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	return c.JSON(h.uc.RemoveItem(GetUserID(c), productID))
}

// Clear godoc
// @Summary      Vaciar la orden en curso
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	return c.JSON(h.uc.Clear(GetUserID(c)))
}

// Checkout godoc
// @Summary      Cerrar la orden: registra la venta y vacía el carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  false  "Sucursal (opcional)"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/checkout [post]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	branch := in.Branch
	if branch == "" {
		branch = h.defaultBranch
	}
	out, err := h.uc.Checkout(GetUserID(c), branch)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyOrder) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_ORDER", Message: "no se puede cobrar una orden vacía"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
