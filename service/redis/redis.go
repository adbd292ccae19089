package redis

import (
	"errors"
	"time"

	"github.com/mahtab89/hypixel-notifier/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis: key not found")
)

// Service is the subset of redis commands the cache layer needs
type Service interface {
	Get(c ctx.Ctx, key string) ([]byte, error)
	Set(c ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(c ctx.Ctx, key string) error
	// TTL returns the remaining lifetime of a key in seconds
	TTL(c ctx.Ctx, key string) (int64, error)
	Ping(c ctx.Ctx) error
}
