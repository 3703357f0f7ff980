package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// CatalogHandler maneja las peticiones HTTP del catálogo.
type CatalogHandler struct {
	uc  *usecase.CatalogUseCase
	log *logger.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// parseID interpreta el parámetro de ruta :id como entero.
func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// respondError mapea errores de dominio a códigos HTTP. Los fallos de
// almacenamiento se registran y responden 500; nunca tumban el proceso.
func (h *CatalogHandler) respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidPrice):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
	default:
		h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("fallo de almacenamiento")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// Create godoc
// @Summary      Crear ítem del catálogo
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CatalogRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /catalog [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{ID: id})
}

// Update godoc
// @Summary      Reemplazar ítem del catálogo (PUT completo, no patch parcial)
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del ítem"
// @Param        body  body  dto.CatalogRequest  true  "Datos del ítem"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /catalog/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser entero"})
	}
	var in dto.CatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar ítem del catálogo
// @Tags         catalog
// @Produce      json
// @Param        id  path  int  true  "ID del ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /catalog/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser entero"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar catálogo con filtro por categoría y paginación
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Categoría (igualdad exacta)"
// @Param        offset    query  int     false  "Offset"  default(0)
// @Param        limit     query  int     false  "Límite"  default(20)
// @Success      200  {object}  dto.CatalogsResponse
// @Router       /catalog/all [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var category *string
	if v := c.Query("category"); v != "" {
		category = &v
	}
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", usecase.DefaultLimit)
	out, err := h.uc.List(c.UserContext(), category, offset, limit)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ítem del catálogo por ID
// @Tags         catalog
// @Produce      json
// @Param        id  path  int  true  "ID del ítem"
// @Success      200  {object}  dto.CatalogItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /catalog/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser entero"})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(out)
}
