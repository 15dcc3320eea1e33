package server

import (
	"smartlife/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListProgress handles GET /api/progress
func (s *Server) ListProgress(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	page := parsePagination(c)
	entries, err := s.progressService.List(c.UserContext(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entries)
}

// GetProgress handles GET /api/progress/:id
func (s *Server) GetProgress(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	entry, err := s.progressService.Get(c.UserContext(), userID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}

// CreateProgress handles POST /api/progress
func (s *Server) CreateProgress(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var in service.ProgressInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	entry, err := s.progressService.Create(c.UserContext(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// UpdateProgress handles PUT /api/progress/:id. Only fields present in the body change.
func (s *Server) UpdateProgress(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var patch service.ProgressPatch
	if err := parseBody(c, &patch); err != nil {
		return nil
	}

	entry, err := s.progressService.Update(c.UserContext(), userID, id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}

// DeleteProgress handles DELETE /api/progress/:id
func (s *Server) DeleteProgress(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.progressService.Delete(c.UserContext(), userID, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Progress entry deleted successfully"})
}

// GetProgressSummary handles GET /api/progress/stats/summary
func (s *Server) GetProgressSummary(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	summary, err := s.progressService.Summary(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetProgressTrends handles GET /api/progress/stats/trends
func (s *Server) GetProgressTrends(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	trends, err := s.progressService.Trends(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(trends)
}
