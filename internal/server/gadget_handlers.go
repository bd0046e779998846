package server

import (
	"strings"

	"sticobytes/internal/models"

	"github.com/gofiber/fiber/v2"
)

type gadgetRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"image_url"`
	Category    string   `json:"category"`
	StockStatus string   `json:"stock_status"`
	IsFeatured  *bool    `json:"is_featured"`
}

func validStockStatus(s models.GadgetStockStatus) bool {
	return s == models.GadgetInStock || s == models.GadgetOutOfStock || s == models.GadgetPreOrder
}

// GetGadgets handles GET /api/gadgets
func (s *Server) GetGadgets(c *fiber.Ctx) error {
	gadgets, err := s.gadgetRepo.List(c.Context(),
		c.Query("category"),
		models.GadgetStockStatus(c.Query("stock_status")),
		c.QueryBool("featured", false))
	if err != nil {
		return fail(c, err)
	}
	return okList(c, gadgets, len(gadgets), nil)
}

// GetGadget handles GET /api/gadgets/:id
func (s *Server) GetGadget(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	gadget, err := s.gadgetRepo.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, gadget, "")
}

// CreateGadget handles POST /api/gadgets
func (s *Server) CreateGadget(c *fiber.Ctx) error {
	var req gadgetRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if strings.TrimSpace(req.Name) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name is required"))
	}

	stockStatus := models.GadgetStockStatus(req.StockStatus)
	if req.StockStatus == "" {
		stockStatus = models.GadgetInStock
	}
	if !validStockStatus(stockStatus) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Stock status must be in_stock, out_of_stock or pre_order"))
	}

	gadget := &models.Gadget{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		StockStatus: stockStatus,
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Price cannot be negative"))
		}
		gadget.Price = *req.Price
	}
	if req.IsFeatured != nil {
		gadget.IsFeatured = *req.IsFeatured
	}
	if err := s.gadgetRepo.Create(c.Context(), gadget); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, gadget, "Gadget created")
}

// UpdateGadget handles PUT /api/gadgets/:id
func (s *Server) UpdateGadget(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req gadgetRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	gadget, err := s.gadgetRepo.GetByID(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}

	if req.Name != "" {
		gadget.Name = req.Name
	}
	if req.Description != "" {
		gadget.Description = req.Description
	}
	if req.ImageURL != "" {
		gadget.ImageURL = req.ImageURL
	}
	if req.Category != "" {
		gadget.Category = req.Category
	}
	if req.StockStatus != "" {
		stockStatus := models.GadgetStockStatus(req.StockStatus)
		if !validStockStatus(stockStatus) {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Stock status must be in_stock, out_of_stock or pre_order"))
		}
		gadget.StockStatus = stockStatus
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Price cannot be negative"))
		}
		gadget.Price = *req.Price
	}
	if req.IsFeatured != nil {
		gadget.IsFeatured = *req.IsFeatured
	}

	if err := s.gadgetRepo.Update(c.Context(), gadget); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, gadget, "Gadget updated")
}

// DeleteGadget handles DELETE /api/gadgets/:id
func (s *Server) DeleteGadget(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.gadgetRepo.Delete(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, nil, "Gadget deleted")
}
