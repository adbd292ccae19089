package mojang

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/mahtab89/hypixel-notifier/base/ctx"
	"github.com/mahtab89/hypixel-notifier/domain"
)

func newTestClient(handler http.Handler) (Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		Timeout:    time.Second,
		Url:        srv.URL,
	})
	return c, srv
}

func Test_GetProfile(t *testing.T) {
	req := require.New(t)
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/users/profiles/minecraft/Notch", r.URL.Path)
		w.Write([]byte(`{"id":"069a79f444e94726a5befca90e38aaf5","name":"Notch"}`))
	}))
	defer srv.Close()

	p, err := c.GetProfile(bCtx.Background(), "Notch")
	req.NoError(err)
	req.Equal("069a79f444e94726a5befca90e38aaf5", p.UUID)
	req.Equal("Notch", p.Name)
}

func Test_GetProfile_NotFound(t *testing.T) {
	req := require.New(t)

	for _, status := range []int{http.StatusNoContent, http.StatusNotFound} {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := c.GetProfile(bCtx.Background(), "zzz_nonexistent_zzz")
		req.ErrorIs(err, domain.ErrNotFound)
		srv.Close()
	}
}

func Test_GetProfile_EmptyUsername(t *testing.T) {
	req := require.New(t)
	called := false
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := c.GetProfile(bCtx.Background(), "   ")
	req.ErrorIs(err, domain.ErrBadParamInput)
	req.False(called, "no network call may happen on invalid input")
}

func Test_GetProfile_UpstreamError(t *testing.T) {
	req := require.New(t)
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := c.GetProfile(bCtx.Background(), "Notch")
	req.ErrorIs(err, domain.ErrUpstreamError)
}

func Test_GetProfile_MalformedResponse(t *testing.T) {
	req := require.New(t)
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Notch"}`)) // no id
	}))
	defer srv.Close()

	_, err := c.GetProfile(bCtx.Background(), "Notch")
	req.ErrorIs(err, domain.ErrUpstreamError)
}
