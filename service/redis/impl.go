package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/mahtab89/hypixel-notifier/base/ctx"
	"github.com/mahtab89/hypixel-notifier/base/metrics"
)

// retTTLNoKey is the return value of TTL when the key does not exist
const retTTLNoKey = -2

type redImpl struct {
	name string
	met  metrics.Service
	pool *redis.Pool
}

// New wraps a redigo pool into a Service
func New(name string, met metrics.Service, pool *redis.Pool) Service {
	return &redImpl{
		name: name,
		met:  met,
		pool: pool,
	}
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	defer r.met.BumpTime("command.latency", "cluster", r.name, "command", commandName).End()

	conn := r.pool.Get()
	defer conn.Close()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getconn.err", 1, "cluster", r.name)
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)
	if err != nil {
		r.met.BumpSum("command.err", 1, "cluster", r.name, "command", commandName)
	}
	return reply, err
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	val, err := redis.Bytes(r.connDo(context, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		context.WithField("err", err).WithField("key", key).Error("redis GET failed")
		return nil, err
	}
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	var err error
	if expire > 0 {
		_, err = r.connDo(context, "SET", key, val, "EX", int(expire.Seconds()))
	} else {
		_, err = r.connDo(context, "SET", key, val)
	}
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("redis SET failed")
		return err
	}
	return nil
}

func (r *redImpl) Del(context ctx.Ctx, key string) error {
	if _, err := r.connDo(context, "DEL", key); err != nil {
		context.WithField("err", err).WithField("key", key).Error("redis DEL failed")
		return err
	}
	return nil
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int64, error) {
	ttl, err := redis.Int64(r.connDo(context, "TTL", key))
	if err != nil {
		context.WithField("err", err).WithField("key", key).Error("redis TTL failed")
		return 0, err
	}
	if ttl == retTTLNoKey {
		return 0, ErrNotFound
	}
	return ttl, nil
}

func (r *redImpl) Ping(context ctx.Ctx) error {
	if _, err := r.connDo(context, "PING"); err != nil {
		context.WithField("err", err).Error("redis PING failed")
		return err
	}
	return nil
}
