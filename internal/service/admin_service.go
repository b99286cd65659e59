package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/zhufei/sports-backend/internal/model"
	"github.com/zhufei/sports-backend/internal/repository"
)

// ErrAdminNotFound is returned when an admin row no longer exists, e.g. a
// valid token whose account was removed underneath it.
var ErrAdminNotFound = errors.New("admin not found")

// AdminService exposes read access to admin accounts for the auth flow.
type AdminService struct {
	adminRepo *repository.AdminRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(adminRepo *repository.AdminRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

// GetByID retrieves an admin by ID.
func (s *AdminService) GetByID(ctx context.Context, id int) (*model.Admin, error) {
	a, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return a, nil
}

// GetByUsername retrieves an admin by exact username match.
func (s *AdminService) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	a, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new admin account. CLI-only.
func (s *AdminService) Create(ctx context.Context, a *model.Admin) error {
	return s.adminRepo.Create(ctx, a)
}
