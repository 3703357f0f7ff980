package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItem representa un producto del catálogo.
// Price es decimal exacto (NUMERIC en PostgreSQL); nunca pasa por float64 en
// la capa de persistencia para no introducir redondeo binario en montos.
type CatalogItem struct {
	ID          int64           // asignado por la base al crear, inmutable
	Name        string
	Description string
	Image       string          // URL o ruta de la imagen
	Price       decimal.Decimal // precio de venta, exacto
	Currency    string          // código de moneda, texto opaco (no se valida contra ISO)
	Category    string          // etiqueta para filtro por igualdad exacta
	CreatedAt   time.Time       // UTC, se estampa una sola vez
	UpdatedAt   time.Time       // UTC, se estampa en cada create y update
}
