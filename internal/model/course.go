package model

import "time"

// Course represents a coaching course. Courses are managed by an external
// course-management tool; this backend reads them only.
type Course struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	CoverImage  string    `json:"cover_image"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
