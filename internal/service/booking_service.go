package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/zhufei/sports-backend/internal/events"
	"github.com/zhufei/sports-backend/internal/model"
	"github.com/zhufei/sports-backend/internal/repository"
)

// Booking lifecycle errors.
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

// createAttempts bounds the booking-number collision retry loop. With 24
// bits of random suffix per second-resolution timestamp, collisions are
// already vanishingly rare; the unique constraint catches the rest.
const createAttempts = 3

// BookingService owns the booking lifecycle: creation with a unique
// booking number, listing, search, stats and status transitions.
type BookingService struct {
	bookingRepo *repository.BookingRepository
	courseRepo  *repository.CourseRepository
	feed        *events.Feed
	log         zerolog.Logger
}

// NewBookingService creates a new BookingService. feed may be nil, in which
// case creation events are not broadcast.
func NewBookingService(
	bookingRepo *repository.BookingRepository,
	courseRepo *repository.CourseRepository,
	feed *events.Feed,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		courseRepo:  courseRepo,
		feed:        feed,
		log:         log.With().Str("component", "booking_service").Logger(),
	}
}

// Create persists a new booking with a generated booking number and status
// pending, and returns the record enriched with its course name.
//
// The course-existence check and the insert are two separate statements;
// a course removed in between surfaces as a foreign-key error from the
// insert. That window is accepted (courses change rarely, bookings do not
// reference inactive state).
func (s *BookingService) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("check course: %w", err)
	}

	b := &model.Booking{
		Name:        req.Name,
		Phone:       req.Phone,
		CourseID:    req.CourseID,
		BookingDate: req.BookingDate,
		BookingTime: req.BookingTime,
		Experience:  req.Experience,
		Message:     req.Message,
	}

	var err error
	for attempt := 1; attempt <= createAttempts; attempt++ {
		b.BookingNumber = generateBookingNumber()
		err = s.bookingRepo.Create(ctx, b)
		if err == nil {
			break
		}
		if !repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("insert booking: %w", err)
		}
		s.log.Warn().
			Str("booking_number", b.BookingNumber).
			Int("attempt", attempt).
			Msg("Booking number collision, regenerating")
	}
	if err != nil {
		return nil, fmt.Errorf("insert booking after %d attempts: %w", createAttempts, err)
	}

	created, err := s.bookingRepo.GetByID(ctx, b.ID)
	if err != nil {
		return nil, fmt.Errorf("load created booking: %w", err)
	}

	if s.feed != nil {
		// Best effort: a dead event feed must not fail the booking.
		if err := s.feed.PublishBookingCreated(ctx, created); err != nil {
			s.log.Warn().Err(err).Msg("Failed to publish booking event")
		}
	}

	return created, nil
}

// List returns all bookings newest-first, optionally filtered by status.
func (s *BookingService) List(ctx context.Context, status model.BookingStatus) ([]model.Booking, error) {
	return s.bookingRepo.List(ctx, status)
}

// GetByID retrieves a single enriched booking.
func (s *BookingService) GetByID(ctx context.Context, id int) (*model.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// GetByNumber retrieves a single enriched booking by booking number.
func (s *BookingService) GetByNumber(ctx context.Context, number string) (*model.Booking, error) {
	b, err := s.bookingRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// UpdateStatus transitions a booking between pending and processed,
// overwrites its notes and refreshes the updated timestamp. Repeating the
// same update is safe.
func (s *BookingService) UpdateStatus(ctx context.Context, id int, status model.BookingStatus, notes string) (*model.Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, status, notes)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if !updated {
		return nil, ErrBookingNotFound
	}

	return s.GetByID(ctx, id)
}

// Stats aggregates today's creations and the per-status counts.
func (s *BookingService) Stats(ctx context.Context) (*model.BookingStats, error) {
	today, err := s.bookingRepo.CountToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("count today: %w", err)
	}

	byStatus, err := s.bookingRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}

	pending := byStatus[model.BookingStatusPending]
	processed := byStatus[model.BookingStatusProcessed]

	return &model.BookingStats{
		Today:     today,
		Pending:   pending,
		Processed: processed,
		Total:     pending + processed,
	}, nil
}

// Search returns bookings matching the keyword in booking number, customer
// name, phone or course name, newest-first.
func (s *BookingService) Search(ctx context.Context, keyword string) ([]model.Booking, error) {
	return s.bookingRepo.Search(ctx, keyword)
}

// generateBookingNumber builds a human-shareable booking reference:
// "ZF" + second-resolution timestamp + 6 hex chars of random entropy.
// Not guessable as a sequential integer; the database unique constraint
// backs up the low collision probability.
func generateBookingNumber() string {
	u := uuid.New()
	return fmt.Sprintf("ZF%s%X", time.Now().Format("20060102150405"), u[:3])
}
