package server

import (
	"errors"

	"sticobytes/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was
// already committed by a helper. Handlers must return nil after seeing
// it so Fiber's ErrorHandler does not overwrite the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// fail maps a service/repository error onto its HTTP status and writes
// the standard error envelope.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// ok writes the success envelope around data, with an optional message.
func ok(c *fiber.Ctx, status int, data any, message string) error {
	body := fiber.Map{
		"success": true,
		"data":    data,
	}
	if message != "" {
		body["message"] = message
	}
	return c.Status(status).JSON(body)
}

// okList writes the success envelope for paginated listings.
func okList(c *fiber.Ctx, data any, count int, meta fiber.Map) error {
	body := fiber.Map{
		"success": true,
		"data":    data,
		"count":   count,
	}
	for k, v := range meta {
		body[k] = v
	}
	return c.JSON(body)
}
