package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zhufei/sports-backend/internal/model"
)

// CourseRepository handles course data access. Courses are read-only from
// the booking core's perspective; they are maintained out-of-band.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// ListActive retrieves all active courses for the public listing.
func (r *CourseRepository) ListActive(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, price, description, duration, cover_image, is_active, created_at
		 FROM courses
		 WHERE is_active
		 ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.Description, &c.Duration, &c.CoverImage, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if courses == nil {
		courses = []model.Course{}
	}
	return courses, rows.Err()
}

// GetByID retrieves a course by ID, active or not. Booking creation only
// requires the course to exist.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, price, description, duration, cover_image, is_active, created_at
		 FROM courses
		 WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Price, &c.Description, &c.Duration, &c.CoverImage, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}
