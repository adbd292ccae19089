package healthcheck

import (
	"github.com/mahtab89/hypixel-notifier/base/ctx"
)

// HealthCheckRepo probes the process dependencies
type HealthCheckRepo interface {
	PingCache(ctx.Ctx) error
}

// HealthCheckUsecase represent the healthcheck usecase
type HealthCheckUsecase interface {
	Check(ctx.Ctx) error
}
