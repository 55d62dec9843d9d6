package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultReservationTTL bounds how long a crashed signup can hold a username.
const DefaultReservationTTL = 30 * time.Second

// UsernameReservation holds short-lived signup claims on usernames.
// Key format: signup:username:<lowercased username>
type UsernameReservation struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUsernameReservation wraps client. A non-positive ttl falls back to
// DefaultReservationTTL.
func NewUsernameReservation(client *redis.Client, ttl time.Duration) *UsernameReservation {
	if ttl <= 0 {
		ttl = DefaultReservationTTL
	}
	return &UsernameReservation{client: client, ttl: ttl}
}

// Reserve claims username. It reports false when another signup holds it.
func (u *UsernameReservation) Reserve(ctx context.Context, username string) (bool, error) {
	ok, err := u.client.SetNX(ctx, reservationKey(username), "1", u.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve username: %w", err)
	}
	return ok, nil
}

// Release drops the claim. Releasing an expired claim is not an error.
func (u *UsernameReservation) Release(ctx context.Context, username string) error {
	if err := u.client.Del(ctx, reservationKey(username)).Err(); err != nil {
		return fmt.Errorf("release username: %w", err)
	}
	return nil
}

func reservationKey(username string) string {
	return "signup:username:" + strings.ToLower(username)
}
