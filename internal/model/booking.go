package model

import "time"

// BookingStatus enumerates the possible states of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusProcessed BookingStatus = "processed"
)

// IsValid reports whether the status is one of the two permitted values.
// Transitions are admin-driven and allowed in either direction.
func (s BookingStatus) IsValid() bool {
	return s == BookingStatusPending || s == BookingStatusProcessed
}

// Booking represents a customer booking request. CourseName is joined from
// the courses table for display convenience and is never stored.
type Booking struct {
	ID            int           `json:"id"`
	BookingNumber string        `json:"booking_number"`
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	CourseID      int           `json:"course_id"`
	CourseName    string        `json:"course_name"`
	BookingDate   string        `json:"booking_date"`
	BookingTime   string        `json:"booking_time"`
	Experience    string        `json:"experience"`
	Message       string        `json:"message"`
	Status        BookingStatus `json:"status"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CreateBookingRequest is the public payload for creating a booking.
// Field rules live in internal/validation; the tags here drive it.
type CreateBookingRequest struct {
	Name        string `json:"name" validate:"notblank"`
	Phone       string `json:"phone" validate:"notblank,cnmobile"`
	CourseID    int    `json:"course_id" validate:"required"`
	BookingDate string `json:"booking_date" validate:"required,futuredate"`
	BookingTime string `json:"booking_time" validate:"required"`
	Experience  string `json:"experience"`
	Message     string `json:"message"`
}

// UpdateStatusRequest is the admin payload for a status change.
type UpdateStatusRequest struct {
	Status BookingStatus `json:"status"`
	Notes  string        `json:"notes"`
}

// BookingStats aggregates booking counts for the admin dashboard.
type BookingStats struct {
	Today     int `json:"today"`
	Pending   int `json:"pending"`
	Processed int `json:"processed"`
	Total     int `json:"total"`
}
