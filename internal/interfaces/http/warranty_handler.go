package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/factora/pos-api/internal/application/dto"
	"github.com/factora/pos-api/internal/application/usecase"
)

// WarrantyHandler maneja las peticiones HTTP de garantías (protegido).
type WarrantyHandler struct {
	uc *usecase.WarrantyUseCase
}

// NewWarrantyHandler construye el handler.
func NewWarrantyHandler(uc *usecase.WarrantyUseCase) *WarrantyHandler {
	return &WarrantyHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar garantía de un producto
// @Tags         garantias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateWarrantyRequest  true  "id_producto, descripción del reclamo"
// @Success      201   {object}  dto.WarrantyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/garantias [post]
func (h *WarrantyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWarrantyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar garantías
// @Tags         garantias
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.WarrantyResponse
// @Router       /api/garantias [get]
func (h *WarrantyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), pageFromQuery(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Listar garantías de un producto
// @Tags         garantias
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {array}   dto.WarrantyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/garantias [get]
func (h *WarrantyHandler) ListByProduct(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.ListByProduct(c.Context(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
