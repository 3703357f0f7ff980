package dto

// CatalogRequest entrada para crear o reemplazar (PUT) un ítem del catálogo.
// Price viaja como float64 en el JSON; la conversión al decimal exacto de
// persistencia la hace pricing.ToStorage.
type CatalogRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
}

// CatalogItemResponse vista de un ítem con el precio como float de transporte.
type CatalogItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
}

// CatalogsResponse listado paginado. Offset y Limit se devuelven tal como se
// aplicaron tras el clamp, para que el cliente pagine contra Total.
type CatalogsResponse struct {
	Total        int64                 `json:"total"`
	CatalogItems []CatalogItemResponse `json:"catalog_items"`
	Offset       int                   `json:"offset"`
	Limit        int                   `json:"limit"`
}
