package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/lotes-api/pkg/logger"
)

const requestIDKey = "request_id"

// RequestID asigna un id único a cada petición (o respeta el X-Request-ID entrante)
// para correlacionar logs de sesiones de conteo concurrentes.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(requestIDKey, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}

// GetRequestID devuelve el id de la petición actual (vacío si no hay middleware).
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// RequestLogger loguea cada petición con método, ruta, status y duración.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		ev := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
