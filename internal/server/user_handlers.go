package server

import (
	"smartlife/internal/service"

	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileImageRequest struct {
	ProfileImage string `json:"profileImage"`
}

// Register handles POST /api/users/register
func (s *Server) Register(c *fiber.Ctx) error {
	var in service.RegisterInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	res, err := s.userService.Register(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Login handles POST /api/users/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	res, err := s.userService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// GetProfile handles GET /api/users/profile
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateProfile handles PUT /api/users/profile
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var in service.UpdateProfileInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateProfileImage handles PUT /api/users/profile/image
func (s *Server) UpdateProfileImage(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var req profileImageRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	user, err := s.userService.UpdateProfileImage(c.UserContext(), userID, req.ProfileImage)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
