package mojang

import (
	"net/http"
	"time"

	bCtx "github.com/mahtab89/hypixel-notifier/base/ctx"
	"github.com/mahtab89/hypixel-notifier/domain/player"
)

// Client resolves a Minecraft username to its stable profile. The service
// returns the canonical casing of the name, which may differ from the input.
type Client interface {
	GetProfile(bCtx.Ctx, string) (*player.Profile, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	// Url overrides the production endpoint, used by tests
	Url string
}

type profileResp struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}
