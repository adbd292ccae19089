package mojang

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	bCtx "github.com/mahtab89/hypixel-notifier/base/ctx"
	"github.com/mahtab89/hypixel-notifier/base/log"
	"github.com/mahtab89/hypixel-notifier/domain"
	"github.com/mahtab89/hypixel-notifier/domain/player"
)

const api = "https://api.mojang.com"

func NewClient(cfg *ClientCfg) Client {
	u := cfg.Url
	if u == "" {
		u = api
	}
	return &client{
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		url:     u,
	}
}

type client struct {
	client  http.Client
	timeout time.Duration
	url     string
}

func (c *client) GetProfile(ctx bCtx.Ctx, username string) (*player.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.ErrBadParamInput
	}

	reqUrl := fmt.Sprintf("%s/users/profiles/minecraft/%s", c.url, url.PathEscape(username))

	cctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(cctx, "GET", reqUrl, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": reqUrl,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, domain.ErrUpstreamError
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": reqUrl,
			"err": err,
		}).Error("client.Do failed")
		return nil, domain.ErrUpstreamError
	}
	defer resp.Body.Close()

	// the identity service signals an unknown name with 204 or 404
	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        reqUrl,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, domain.ErrUpstreamError
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithField("err", err).Error("failed to read body")
		return nil, domain.ErrUpstreamError
	}

	p := profileResp{}
	if err := json.Unmarshal(body, &p); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, domain.ErrUpstreamError
	}
	if p.Id == "" {
		ctx.WithField("username", username).Error("profile response missing id")
		return nil, domain.ErrUpstreamError
	}

	return &player.Profile{UUID: p.Id, Name: p.Name}, nil
}
