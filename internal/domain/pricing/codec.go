package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// ToStorage convierte el precio de transporte (float64 del JSON) al decimal
// exacto de persistencia. Rechaza NaN, infinitos y negativos con
// domain.ErrInvalidPrice. No se impone redondeo de negocio: se conserva la
// representación decimal más corta que reproduce exactamente el float de
// entrada.
func ToStorage(price float64) (decimal.Decimal, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return decimal.Decimal{}, fmt.Errorf("%w: no es un número finito", domain.ErrInvalidPrice)
	}
	if price < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: %v es negativo", domain.ErrInvalidPrice, price)
	}
	return decimal.NewFromFloat(price), nil
}

// ToTransport convierte el decimal de persistencia al float64 más cercano
// representable. El round-trip no es bit-exacto para decimales con más
// precisión que la mantisa de float64; los consumidores comparan con epsilon.
func ToTransport(price decimal.Decimal) float64 {
	f, _ := price.Float64()
	return f
}
