package cache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mahtab89/hypixel-notifier/base/ctx"
	"github.com/mahtab89/hypixel-notifier/domain/keys"
	"github.com/mahtab89/hypixel-notifier/service/cache/provider"
	"github.com/mahtab89/hypixel-notifier/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.CacheKey(ts.im.pfx, k), sv, time.Second))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)

	time.Sleep(1100 * time.Millisecond)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))
}

func (ts *testsuite) TestSet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, keys.CacheKey(ts.im.pfx, k))
	ts.NoError(err)

	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSetOverwrites() {
	var (
		k = "key"
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, value{"old"}))
	ts.NoError(ts.im.Set(mockCtx, k, value{"new"}))

	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(value{"new"}, *c)
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, func() (interface{}, error) {
		return &v, nil
	}))
	ts.Equal(v, *c)

	// second read comes from cache, getter must not run
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, func() (interface{}, error) {
		ts.FailNow("getter called on cache hit")
		return nil, nil
	}))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestDistinctPrefixes() {
	other := New(ServiceConfig{
		Ttl:   time.Second,
		Pfx:   "other",
		Cache: ts.cache,
	})

	c := &value{}
	ts.NoError(ts.im.Set(mockCtx, "key", value{"value"}))
	ts.Equal(ErrNotFound, other.Get(mockCtx, "key", c))
}
