package server

import (
	"sticobytes/internal/models"
	"sticobytes/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type newsletterRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /api/newsletter/subscribe
func (s *Server) Subscribe(c *fiber.Ctx) error {
	var req newsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	sub, err := s.newsletterRepo.Subscribe(c.Context(), req.Email)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, sub, "Subscribed to newsletter")
}

// Unsubscribe handles POST /api/newsletter/unsubscribe
func (s *Server) Unsubscribe(c *fiber.Ctx) error {
	var req newsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	if err := s.newsletterRepo.Unsubscribe(c.Context(), req.Email); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, nil, "Unsubscribed from newsletter")
}

// GetSubscribers handles GET /api/newsletter/subscribers
func (s *Server) GetSubscribers(c *fiber.Ctx) error {
	subs, err := s.newsletterRepo.ListActive(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return okList(c, subs, len(subs), nil)
}
