package server

import (
	"smartlife/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListWorkouts handles GET /api/fitness/workouts
func (s *Server) ListWorkouts(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	page := parsePagination(c)
	workouts, err := s.workoutService.List(c.UserContext(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workouts)
}

// GetWorkout handles GET /api/fitness/workouts/:id
func (s *Server) GetWorkout(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	workout, err := s.workoutService.Get(c.UserContext(), userID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workout)
}

// CreateWorkout handles POST /api/fitness/workouts
func (s *Server) CreateWorkout(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	var in service.WorkoutInput
	if err := parseBody(c, &in); err != nil {
		return nil
	}

	workout, err := s.workoutService.Create(c.UserContext(), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

// UpdateWorkout handles PUT /api/fitness/workouts/:id. Only fields present in the body change.
func (s *Server) UpdateWorkout(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	var patch service.WorkoutPatch
	if err := parseBody(c, &patch); err != nil {
		return nil
	}

	workout, err := s.workoutService.Update(c.UserContext(), userID, id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workout)
}

// DeleteWorkout handles DELETE /api/fitness/workouts/:id
func (s *Server) DeleteWorkout(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.workoutService.Delete(c.UserContext(), userID, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Workout deleted successfully"})
}

// CompleteExercise handles PUT /api/fitness/workouts/:workoutId/exercises/:exerciseId
func (s *Server) CompleteExercise(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}
	workoutID, err := parseID(c, "workoutId")
	if err != nil {
		return nil
	}

	workout, err := s.workoutService.CompleteExercise(c.UserContext(), userID, workoutID, c.Params("exerciseId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(workout)
}

// GetWorkoutStats handles GET /api/fitness/stats
func (s *Server) GetWorkoutStats(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	summary, err := s.workoutService.Stats(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetWeeklyActivity handles GET /api/fitness/stats/weekly
func (s *Server) GetWeeklyActivity(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return nil
	}

	days, err := s.workoutService.Weekly(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(days)
}
