package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	h := NewCatalogHandler(deps.CatalogUC, deps.Log)

	catalog := app.Group("/catalog")
	catalog.Post("/", h.Create)
	// "/all" se registra antes que "/:id" para que fiber no capture "all" como id.
	catalog.Get("/all", h.List)
	catalog.Get("/:id", h.GetByID)
	catalog.Put("/:id", h.Update)
	catalog.Delete("/:id", h.Delete)
}
