package server

import (
	"strings"

	"sticobytes/internal/models"

	"github.com/gofiber/fiber/v2"
)

type teamMemberRequest struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	Bio          string `json:"bio"`
	PhotoURL     string `json:"photo_url"`
	LinkedinURL  string `json:"linkedin_url"`
	DisplayOrder *int   `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

// GetTeamMembers handles GET /api/team. The public view hides inactive
// members; admins can pass all=true to see everyone.
func (s *Server) GetTeamMembers(c *fiber.Ctx) error {
	var members []models.TeamMember
	var err error
	if c.QueryBool("all", false) {
		members, err = s.teamRepo.ListAll(c.Context())
	} else {
		members, err = s.teamRepo.ListActive(c.Context())
	}
	if err != nil {
		return fail(c, err)
	}
	return okList(c, members, len(members), nil)
}

// GetTeamMember handles GET /api/team/:id
func (s *Server) GetTeamMember(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	member, err := s.teamRepo.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, member, "")
}

// CreateTeamMember handles POST /api/team
func (s *Server) CreateTeamMember(c *fiber.Ctx) error {
	var req teamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if strings.TrimSpace(req.Name) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}

	member := &models.TeamMember{
		Name:        req.Name,
		Position:    req.Position,
		Bio:         req.Bio,
		PhotoURL:    req.PhotoURL,
		LinkedinURL: req.LinkedinURL,
		IsActive:    true,
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	if err := s.teamRepo.Create(c.Context(), member); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, member, "Team member created")
}

// UpdateTeamMember handles PUT /api/team/:id
func (s *Server) UpdateTeamMember(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req teamMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	member, err := s.teamRepo.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}

	if req.Name != "" {
		member.Name = req.Name
	}
	if req.Position != "" {
		member.Position = req.Position
	}
	if req.Bio != "" {
		member.Bio = req.Bio
	}
	if req.PhotoURL != "" {
		member.PhotoURL = req.PhotoURL
	}
	if req.LinkedinURL != "" {
		member.LinkedinURL = req.LinkedinURL
	}
	if req.DisplayOrder != nil {
		member.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	if err := s.teamRepo.Update(c.Context(), member); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, member, "Team member updated")
}

// DeleteTeamMember handles DELETE /api/team/:id
func (s *Server) DeleteTeamMember(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.teamRepo.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, nil, "Team member deleted")
}
