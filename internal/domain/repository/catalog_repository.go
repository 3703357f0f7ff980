package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia para CatalogItem (DIP).
//
// category en List y Count es el mismo predicado: igualdad exacta cuando no
// es nil, sin filtro cuando es nil. Ambos métodos deben aplicar semántica
// idéntica para que un cliente paginando con offset/limit contra el total
// reportado converja sin huecos ni duplicados (sin escrituras concurrentes).
type CatalogRepository interface {
	// Insert persiste un ítem nuevo y devuelve el ID asignado por la base.
	Insert(ctx context.Context, item *entity.CatalogItem) (int64, error)
	// Update reemplaza todos los campos mutables del ítem con ID dado.
	// Devuelve filas afectadas: 0 si el ID no existe (no es error), 1 si se aplicó.
	Update(ctx context.Context, item *entity.CatalogItem) (int64, error)
	// Delete elimina por ID, con la misma semántica cero-o-uno de Update.
	Delete(ctx context.Context, id int64) (int64, error)
	// GetByID devuelve el ítem o (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.CatalogItem, error)
	// List devuelve hasta limit ítems saltando offset filas del conjunto
	// filtrado, ordenados por ID ascendente (orden estable entre llamadas).
	List(ctx context.Context, category *string, offset, limit int) ([]*entity.CatalogItem, error)
	// Count devuelve el tamaño total del conjunto filtrado, independiente de
	// cualquier página.
	Count(ctx context.Context, category *string) (int64, error)
}
