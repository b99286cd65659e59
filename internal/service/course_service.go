package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/zhufei/sports-backend/internal/model"
	"github.com/zhufei/sports-backend/internal/repository"
)

// ErrCourseNotFound is returned when a referenced course does not exist.
var ErrCourseNotFound = errors.New("course not found")

// CourseService exposes the read-only course catalog.
type CourseService struct {
	courseRepo *repository.CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// ListActive returns the active courses shown on the public site.
func (s *CourseService) ListActive(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.ListActive(ctx)
}

// GetByID retrieves a single course.
func (s *CourseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	c, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return c, nil
}
