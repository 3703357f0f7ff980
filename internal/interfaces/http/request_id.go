package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID cabecera de correlación de peticiones.
const HeaderRequestID = "X-Request-Id"

// RequestID asigna un identificador único a cada petición si el cliente no
// envía uno, lo expone en locals y lo devuelve en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(HeaderRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

// GetRequestID devuelve el id de correlación cargado por RequestID, o "".
func GetRequestID(c *fiber.Ctx) string {
	if v, ok := c.Locals(HeaderRequestID).(string); ok {
		return v
	}
	return ""
}
