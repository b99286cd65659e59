// Package events carries booking lifecycle notifications between the API
// and connected admin consoles. Events travel over a Redis pub/sub channel
// so every server instance sees creations from every other instance.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/zhufei/sports-backend/internal/model"
)

// Channel is the Redis pub/sub channel for booking events.
const Channel = "bookings:events"

// EventBookingCreated identifies a new-booking event payload.
const EventBookingCreated = "booking.created"

// BookingEvent is the wire shape pushed to admin consoles.
type BookingEvent struct {
	Type          string    `json:"type"`
	BookingID     int       `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	Name          string    `json:"name"`
	CourseName    string    `json:"course_name"`
	BookingDate   string    `json:"booking_date"`
	BookingTime   string    `json:"booking_time"`
	CreatedAt     time.Time `json:"created_at"`
}

// Feed publishes and subscribes to booking events.
type Feed struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewFeed creates a new Feed.
func NewFeed(rdb *redis.Client, log zerolog.Logger) *Feed {
	return &Feed{
		rdb: rdb,
		log: log.With().Str("component", "events").Logger(),
	}
}

// PublishBookingCreated announces a freshly persisted booking.
func (f *Feed) PublishBookingCreated(ctx context.Context, b *model.Booking) error {
	ev := BookingEvent{
		Type:          EventBookingCreated,
		BookingID:     b.ID,
		BookingNumber: b.BookingNumber,
		Name:          b.Name,
		CourseName:    b.CourseName,
		BookingDate:   b.BookingDate,
		BookingTime:   b.BookingTime,
		CreatedAt:     b.CreatedAt,
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal booking event: %w", err)
	}

	if err := f.rdb.Publish(ctx, Channel, payload).Err(); err != nil {
		return fmt.Errorf("publish booking event: %w", err)
	}

	f.log.Debug().Str("booking_number", b.BookingNumber).Msg("Booking event published")
	return nil
}

// Subscribe opens a subscription to the booking event channel. The caller
// owns the returned PubSub and must Close it.
func (f *Feed) Subscribe(ctx context.Context) *redis.PubSub {
	return f.rdb.Subscribe(ctx, Channel)
}
