package server

import (
	"strings"

	"sticobytes/internal/models"

	"github.com/gofiber/fiber/v2"
)

type serviceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	IsFeatured  *bool  `json:"is_featured"`
}

// GetServices handles GET /api/services
func (s *Server) GetServices(c *fiber.Ctx) error {
	services, err := s.serviceRepo.List(c.Context(),
		c.Query("category"), c.QueryBool("featured", false))
	if err != nil {
		return fail(c, err)
	}
	return okList(c, services, len(services), nil)
}

// GetService handles GET /api/services/:id
func (s *Server) GetService(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	svc, err := s.serviceRepo.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, svc, "")
}

// CreateService handles POST /api/services
func (s *Server) CreateService(c *fiber.Ctx) error {
	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if strings.TrimSpace(req.Title) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}

	svc := &models.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Category:    req.Category,
	}
	if req.IsFeatured != nil {
		svc.IsFeatured = *req.IsFeatured
	}
	if err := s.serviceRepo.Create(c.Context(), svc); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, svc, "Service created")
}

// UpdateService handles PUT /api/services/:id
func (s *Server) UpdateService(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req serviceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	svc, err := s.serviceRepo.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}

	if req.Title != "" {
		svc.Title = req.Title
	}
	if req.Description != "" {
		svc.Description = req.Description
	}
	if req.Icon != "" {
		svc.Icon = req.Icon
	}
	if req.Category != "" {
		svc.Category = req.Category
	}
	if req.IsFeatured != nil {
		svc.IsFeatured = *req.IsFeatured
	}

	if err := s.serviceRepo.Update(c.Context(), svc); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, svc, "Service updated")
}

// DeleteService handles DELETE /api/services/:id
func (s *Server) DeleteService(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.serviceRepo.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, nil, "Service deleted")
}
