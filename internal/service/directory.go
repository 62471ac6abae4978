// Package service implements the business-rule boundary between HTTP handlers and storage.
package service

import (
	"context"
	"time"

	"userdir/internal/models"
	"userdir/internal/repository"
	"userdir/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// DirectoryService is a thin façade over the user repository. It exists to
// keep handlers decoupled from storage technology; its only logic beyond
// pass-through is payload validation and password hashing.
type DirectoryService struct {
	userRepo repository.UserRepository
}

// NewDirectoryService creates a DirectoryService backed by the given repository.
func NewDirectoryService(userRepo repository.UserRepository) *DirectoryService {
	return &DirectoryService{userRepo: userRepo}
}

// ListUsers returns every record in the directory.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// SearchUsers returns records whose name or email contains term, case-insensitively.
func (s *DirectoryService) SearchUsers(ctx context.Context, term string) ([]models.User, error) {
	return s.userRepo.Search(ctx, term)
}

// GetUserByID returns a single record or a NotFound error.
func (s *DirectoryService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// CreateUser validates the payload, hashes the password and persists a new record.
func (s *DirectoryService) CreateUser(ctx context.Context, in models.UserInput) (*models.User, error) {
	if err := validation.ValidateUserInput(in.Name, in.Email, in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser replaces every mutable field of an existing record.
// Returns NotFound when the id does not exist.
func (s *DirectoryService) UpdateUser(ctx context.Context, id uint, in models.UserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateUserInput(in.Name, in.Email, in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	now := time.Now().UTC()
	user.Name = in.Name
	user.Email = in.Email
	user.Password = string(hashed)
	user.UpdatedAt = &now

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a record by id. Returns NotFound when the id does not exist.
func (s *DirectoryService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}
