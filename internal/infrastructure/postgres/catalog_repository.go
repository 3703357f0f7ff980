package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

const catalogColumns = `id, name, description, image, price, currency, category, created_at, updated_at`

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL
// (usable con pool o tx vía Querier).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de persistencia del catálogo.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// Insert persiste un ítem nuevo; el ID lo asigna la secuencia de la tabla.
func (r *CatalogRepo) Insert(ctx context.Context, item *entity.CatalogItem) (int64, error) {
	query := `
		INSERT INTO catalog (name, description, image, price, currency, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		item.Name, item.Description, item.Image, item.Price,
		item.Currency, item.Category, item.CreatedAt, item.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert catalog item: %w", err)
	}
	return id, nil
}

// Update reemplaza todos los campos mutables del ítem. created_at no se toca.
// Cero filas afectadas significa que el ID no existe; no es error.
func (r *CatalogRepo) Update(ctx context.Context, item *entity.CatalogItem) (int64, error) {
	query := `
		UPDATE catalog
		SET name = $2, description = $3, image = $4, price = $5, currency = $6, category = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Image, item.Price,
		item.Currency, item.Category, item.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("update catalog item: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina por ID, con la misma semántica cero-o-uno de Update.
func (r *CatalogRepo) Delete(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM catalog WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete catalog item: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// GetByID obtiene un ítem por ID, o (nil, nil) si no existe.
func (r *CatalogRepo) GetByID(ctx context.Context, id int64) (*entity.CatalogItem, error) {
	query := `SELECT ` + catalogColumns + ` FROM catalog WHERE id = $1`
	var it entity.CatalogItem
	err := r.q.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Name, &it.Description, &it.Image, &it.Price,
		&it.Currency, &it.Category, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get catalog item: %w", err)
	}
	return &it, nil
}

// List devuelve una página ordenada por ID ascendente, con filtro opcional de
// categoría por igualdad exacta. El ORDER BY id fija un orden estable: sin
// escrituras concurrentes la paginación no salta ni repite filas.
func (r *CatalogRepo) List(ctx context.Context, category *string, offset, limit int) ([]*entity.CatalogItem, error) {
	base := `SELECT ` + catalogColumns + ` FROM catalog`
	var (
		rows pgx.Rows
		err  error
	)
	if category != nil {
		rows, err = r.q.Query(ctx, base+` WHERE category = $1 ORDER BY id ASC LIMIT $2 OFFSET $3`,
			*category, limit, offset)
	} else {
		rows, err = r.q.Query(ctx, base+` ORDER BY id ASC LIMIT $1 OFFSET $2`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list catalog items: %w", err)
	}
	defer rows.Close()

	var list []*entity.CatalogItem
	for rows.Next() {
		var it entity.CatalogItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Image, &it.Price,
			&it.Currency, &it.Category, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Count devuelve el total del conjunto filtrado con el mismo predicado de
// List, independiente de offset/limit.
func (r *CatalogRepo) Count(ctx context.Context, category *string) (int64, error) {
	var (
		total int64
		err   error
	)
	if category != nil {
		err = r.q.QueryRow(ctx, `SELECT count(id) FROM catalog WHERE category = $1`, *category).Scan(&total)
	} else {
		err = r.q.QueryRow(ctx, `SELECT count(id) FROM catalog`).Scan(&total)
	}
	if err != nil {
		return 0, fmt.Errorf("count catalog items: %w", err)
	}
	return total, nil
}
