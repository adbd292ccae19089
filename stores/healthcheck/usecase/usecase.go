package usecase

import (
	"github.com/mahtab89/hypixel-notifier/base/ctx"
	hcdomain "github.com/mahtab89/hypixel-notifier/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	return im.repo.PingCache(context)
}
