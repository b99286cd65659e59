package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhufei/sports-backend/internal/model"
)

func TestBookingEventRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	feed := NewFeed(rdb, zerolog.Nop())
	ctx := context.Background()

	sub := feed.Subscribe(ctx)
	defer sub.Close()

	// Wait for the subscription to be confirmed before publishing.
	_, err := sub.Receive(ctx)
	require.NoError(t, err)
	ch := sub.Channel()

	booking := &model.Booking{
		ID:            42,
		BookingNumber: "ZF20260828120000A1B2C3",
		Name:          "张三",
		CourseName:    "青少年篮球训练营",
		BookingDate:   "2026-09-01",
		BookingTime:   "09:00-10:00",
		CreatedAt:     time.Now(),
	}
	require.NoError(t, feed.PublishBookingCreated(ctx, booking))

	select {
	case msg := <-ch:
		var ev BookingEvent
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &ev))
		assert.Equal(t, EventBookingCreated, ev.Type)
		assert.Equal(t, 42, ev.BookingID)
		assert.Equal(t, "ZF20260828120000A1B2C3", ev.BookingNumber)
		assert.Equal(t, "张三", ev.Name)
		assert.Equal(t, "青少年篮球训练营", ev.CourseName)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for booking event")
	}
}

func TestPublishFailsWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	feed := NewFeed(rdb, zerolog.Nop())
	mr.Close()

	err := feed.PublishBookingCreated(context.Background(), &model.Booking{ID: 1})
	assert.Error(t, err)
}
