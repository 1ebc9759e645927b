package redis

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// bookingChannel is the pub/sub channel carrying change notifications
// for one calendar date.
func bookingChannel(date string) string {
	return "bookings:" + date
}

// PublishBookingChange notifies subscribers that the booking set for a
// date changed, so they can re-resolve availability.
func PublishBookingChange(date string) error {
	if Client == nil {
		return nil
	}
	return Client.Publish(Ctx, bookingChannel(date), "changed").Err()
}

// SubscribeBookingChanges returns a channel that receives a signal every
// time a booking for the given date is created or changes status. The
// caller re-runs the availability resolver on each signal and calls
// close() when done with the date.
func SubscribeBookingChanges(ctx context.Context, date string) (<-chan struct{}, func() error) {
	sub := Client.Subscribe(ctx, bookingChannel(date))
	signals := make(chan struct{}, 1)

	go func() {
		defer close(signals)
		for range sub.Channel() {
			select {
			case signals <- struct{}{}:
			default:
				// a signal is already pending, the next recompute covers it
			}
		}
	}()

	return signals, sub.Close
}
