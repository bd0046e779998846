package server

import (
	"sticobytes/internal/models"
	"sticobytes/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPublishedPosts handles GET /api/blog
func (s *Server) GetPublishedPosts(c *fiber.Ctx) error {
	page, err := s.blogService.ListPublished(c.Context(), service.ListPublishedInput{
		CategorySlug: c.Query("category"),
		Page:         c.QueryInt("page", 1),
		Limit:        c.QueryInt("limit", 0),
	})
	if err != nil {
		return fail(c, err)
	}
	return okList(c, page.Posts, len(page.Posts), fiber.Map{
		"total":      page.Meta.TotalCount,
		"page":       page.Meta.CurrentPage,
		"totalPages": page.Meta.TotalPages,
	})
}

// GetCategories handles GET /api/blog/categories
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.blogService.Categories(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return okList(c, categories, len(categories), nil)
}

// GetCategoryBySlug handles GET /api/blog/categories/:slug
func (s *Server) GetCategoryBySlug(c *fiber.Ctx) error {
	category, err := s.blogService.Category(c.Context(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, category, "")
}

// GetTags handles GET /api/blog/tags
func (s *Server) GetTags(c *fiber.Ctx) error {
	tags, err := s.tagRepo.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return okList(c, tags, len(tags), nil)
}

// GetPublishedPostBySlug handles GET /api/blog/:slug
func (s *Server) GetPublishedPostBySlug(c *fiber.Ctx) error {
	post, err := s.blogService.GetPublishedPost(c.Context(), c.Params("slug"))
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, post, "")
}

// GetAllPosts handles GET /api/blog/all
func (s *Server) GetAllPosts(c *fiber.Ctx) error {
	page, err := s.blogService.ListAll(c.Context(),
		c.QueryInt("page", 1), c.QueryInt("limit", 0))
	if err != nil {
		return fail(c, err)
	}
	return okList(c, page.Posts, len(page.Posts), fiber.Map{
		"total":      page.Meta.TotalCount,
		"page":       page.Meta.CurrentPage,
		"totalPages": page.Meta.TotalPages,
	})
}

// GetPostByID handles GET /api/blog/post/:id
func (s *Server) GetPostByID(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.blogService.GetPost(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, post, "")
}

// CreatePost handles POST /api/blog
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var in service.CreatePostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.blogService.CreatePost(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusCreated, post, "Blog post created")
}

// UpdatePost handles PUT /api/blog/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in service.UpdatePostInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	in.PostID = id

	post, err := s.blogService.UpdatePost(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, post, "Blog post updated")
}

// DeletePost handles DELETE /api/blog/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.blogService.DeletePost(c.Context(), id); err != nil {
		return fail(c, err)
	}
	return ok(c, fiber.StatusOK, nil, "Blog post deleted")
}
