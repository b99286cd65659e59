package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zhufei/sports-backend/internal/model"
)

// bookingColumns is the SELECT list shared by every enriched booking query.
// booking_date is rendered as YYYY-MM-DD text; course_name is joined from
// courses for display convenience.
const bookingColumns = `
	b.id, b.booking_number, b.name, b.phone, b.course_id, c.name,
	to_char(b.booking_date, 'YYYY-MM-DD'), b.booking_time,
	b.experience, b.message, b.status, b.notes, b.created_at, b.updated_at`

// BookingRepository handles booking data access. It is the sole mutator of
// the bookings table.
type BookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository creates a new BookingRepository.
func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create inserts a new booking with status defaulted to pending.
// The bookings.booking_number unique constraint is the final arbiter of
// number uniqueness; callers retry on IsUniqueViolation.
func (r *BookingRepository) Create(ctx context.Context, b *model.Booking) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO bookings
		   (booking_number, name, phone, course_id, booking_date, booking_time, experience, message)
		 VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8)
		 RETURNING id, status, notes, created_at, updated_at`,
		b.BookingNumber, b.Name, b.Phone, b.CourseID, b.BookingDate, b.BookingTime, b.Experience, b.Message,
	).Scan(&b.ID, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
}

// GetByID retrieves a booking by ID, enriched with its course name.
func (r *BookingRepository) GetByID(ctx context.Context, id int) (*model.Booking, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT`+bookingColumns+`
		 FROM bookings b
		 JOIN courses c ON b.course_id = c.id
		 WHERE b.id = $1`, id,
	)
	return scanBooking(row)
}

// GetByNumber retrieves a booking by its booking number.
func (r *BookingRepository) GetByNumber(ctx context.Context, number string) (*model.Booking, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT`+bookingColumns+`
		 FROM bookings b
		 JOIN courses c ON b.course_id = c.id
		 WHERE b.booking_number = $1`, number,
	)
	return scanBooking(row)
}

// List retrieves all bookings newest-first, optionally filtered by status.
// An empty status means no filter.
func (r *BookingRepository) List(ctx context.Context, status model.BookingStatus) ([]model.Booking, error) {
	query := `SELECT` + bookingColumns + `
		 FROM bookings b
		 JOIN courses c ON b.course_id = c.id`
	args := []interface{}{}

	if status != "" {
		query += ` WHERE b.status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY b.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBookings(rows)
}

// Search retrieves bookings whose booking number, customer name, phone or
// course name contains the keyword (case-insensitive), newest-first.
func (r *BookingRepository) Search(ctx context.Context, keyword string) ([]model.Booking, error) {
	pattern := "%" + keyword + "%"
	rows, err := r.pool.Query(ctx,
		`SELECT`+bookingColumns+`
		 FROM bookings b
		 JOIN courses c ON b.course_id = c.id
		 WHERE b.booking_number ILIKE $1
		    OR b.name ILIKE $1
		    OR b.phone ILIKE $1
		    OR c.name ILIKE $1
		 ORDER BY b.created_at DESC`, pattern,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectBookings(rows)
}

// UpdateStatus overwrites a booking's status and notes and refreshes the
// updated timestamp. Returns false if the booking does not exist.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int, status model.BookingStatus, notes string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE bookings
		 SET status = $1, notes = $2, updated_at = NOW()
		 WHERE id = $3`,
		status, notes, id,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// CountToday counts bookings created on the server-local calendar day.
func (r *BookingRepository) CountToday(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE created_at::date = CURRENT_DATE`,
	).Scan(&count)
	return count, err
}

// CountByStatus returns booking counts grouped by status.
func (r *BookingRepository) CountByStatus(ctx context.Context) (map[model.BookingStatus]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM bookings GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[model.BookingStatus]int)
	for rows.Next() {
		var status model.BookingStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505), e.g. a booking-number collision.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanBooking(row pgx.Row) (*model.Booking, error) {
	b := &model.Booking{}
	err := row.Scan(
		&b.ID, &b.BookingNumber, &b.Name, &b.Phone, &b.CourseID, &b.CourseName,
		&b.BookingDate, &b.BookingTime, &b.Experience, &b.Message,
		&b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func collectBookings(rows pgx.Rows) ([]model.Booking, error) {
	var bookings []model.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	return bookings, rows.Err()
}
