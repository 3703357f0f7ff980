package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/pricing"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// storeTimeout acota cada acceso a la base; ninguna operación bloquea
// indefinidamente esperando al almacenamiento.
const storeTimeout = 5 * time.Second

// DefaultLimit tamaño de página cuando el cliente no envía limit.
const DefaultLimit = 20

// CatalogUseCase casos de uso CRUD y listado paginado del catálogo.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// validateRequest exige name no vacío y precio convertible a decimal exacto.
func validateRequest(in dto.CatalogRequest) (decimal.Decimal, error) {
	if in.Name == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	return pricing.ToStorage(in.Price)
}

// Create valida la entrada, estampa created_at/updated_at en UTC y persiste.
// Devuelve el ID asignado por el almacenamiento.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.CatalogRequest) (int64, error) {
	price, err := validateRequest(in)
	if err != nil {
		return 0, err
	}
	now := time.Now().UTC()
	item := &entity.CatalogItem{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Price:       price,
		Currency:    in.Currency,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return uc.repo.Insert(ctx, item)
}

// Update reemplaza todos los campos mutables del ítem: es un reemplazo total,
// no un merge parcial. created_at se conserva; updated_at se estampa de nuevo.
// Devuelve domain.ErrNotFound si el ID no existe.
func (uc *CatalogUseCase) Update(ctx context.Context, id int64, in dto.CatalogRequest) error {
	price, err := validateRequest(in)
	if err != nil {
		return err
	}
	item := &entity.CatalogItem{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Price:       price,
		Currency:    in.Currency,
		Category:    in.Category,
		UpdatedAt:   time.Now().UTC(),
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	affected, err := uc.repo.Update(ctx, item)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el ítem sin comprobación previa de existencia; cero filas
// afectadas se reporta como domain.ErrNotFound.
func (uc *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	affected, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene la vista de un ítem con el precio convertido a float de
// transporte. Devuelve domain.ErrNotFound si no existe.
func (uc *CatalogUseCase) GetByID(ctx context.Context, id int64) (*dto.CatalogItemResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List devuelve una página del catálogo junto con el total del conjunto
// filtrado. Count y List comparten el mismo predicado de categoría, pero son
// dos consultas separadas, no un snapshot: con escrituras concurrentes entre
// ambas, Total puede divergir momentáneamente de la página devuelta. Es una
// debilidad de consistencia aceptada, no un bug.
//
// offset y limit negativos se ajustan a cero; limit 0 es una petición válida
// de "cero ítems, solo el total".
func (uc *CatalogUseCase) List(ctx context.Context, category *string, offset, limit int) (*dto.CatalogsResponse, error) {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	total, err := uc.repo.Count(ctx, category)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, category, offset, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *toItemResponse(it))
	}
	return &dto.CatalogsResponse{
		Total:        total,
		CatalogItems: items,
		Offset:       offset,
		Limit:        limit,
	}, nil
}

func toItemResponse(it *entity.CatalogItem) *dto.CatalogItemResponse {
	if it == nil {
		return nil
	}
	return &dto.CatalogItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Image:       it.Image,
		Price:       pricing.ToTransport(it.Price),
		Currency:    it.Currency,
		Category:    it.Category,
	}
}
