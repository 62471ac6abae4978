package server

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"userdir/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users
//
// @Summary List or search users
// @Description Returns all users, or those whose name or email contains the search term. Capped at 100 records.
// @Tags users
// @Produce json
// @Param search query string false "case-insensitive substring matched against name and email"
// @Success 200 {array} models.User
// @Router /users [get]
func (s *Server) GetUsers(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	var (
		users []models.User
		err   error
	)

	term := strings.TrimSpace(c.Query("search"))
	if term != "" {
		users, err = s.directory.SearchUsers(ctx, term)
	} else {
		users, err = s.directory.ListUsers(ctx)
	}
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return models.RespondWithError(c, fiber.StatusGatewayTimeout,
				models.NewInternalError(err))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(capUsers(users))
}

// GetUser handles GET /api/users/:id
//
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path int true "user ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.directory.GetUserByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(user)
}

// CreateUser handles POST /api/users
//
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserInput true "user payload"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /users [post]
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var in models.UserInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.directory.CreateUser(c.Context(), in)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	s.publishUserChanged()

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/users/%d", user.ID))
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser handles PUT /api/users/:id
//
// @Summary Replace a user
// @Description Full-record replacement; every mutable field must be supplied.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "user ID"
// @Param user body models.UserInput true "replacement payload"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [put]
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var in models.UserInput
	if err := c.BodyParser(&in); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.directory.UpdateUser(c.Context(), id, in)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	s.publishUserChanged()

	return c.JSON(user)
}

// DeleteUser handles DELETE /api/users/:id
//
// @Summary Delete a user
// @Tags users
// @Param id path int true "user ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{id} [delete]
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.directory.DeleteUser(c.Context(), id); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	s.publishUserChanged()

	return c.SendStatus(fiber.StatusNoContent)
}
