package provider

import (
	"errors"
	"time"

	"github.com/mahtab89/hypixel-notifier/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// raw cache implementation; expiry is enforced at read time
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
