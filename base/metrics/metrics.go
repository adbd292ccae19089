/*
Package metrics wraps datadog-go to facilitate metric recording.
Naming convention:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/mahtab89/hypixel-notifier/base/env"
	"github.com/mahtab89/hypixel-notifier/base/log"
)

const (
	ddPort = 8125
	// buffer a few counters before flushing to the statsd agent
	bufferMetrics = 10
	// ddRate is the rate to pass metrics to the agent. 1 means always
	ddRate = 1
)

// Ender finishes a timer started with BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

var (
	initOnce sync.Once
	ddClient *statsd.Client
)

func initDDClient() {
	addr := fmt.Sprintf("%s:%d", viper.GetString("datadog_host"), ddPort)
	cli, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("can't talk to datadog agent, metrics disabled")
		return
	}
	ddClient = cli
}

// New creates a metric client with the package name as key prefix
func New(pkgName string) Service {
	return &metrics{
		pkgName: pkgName,
		tags: []string{
			"host:", // remove unused host tag
			"pod:" + env.PodName(),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type metrics struct {
	pkgName string
	tags    []string
}

// BumpSum bumps the sum for the given key.
func (mt *metrics) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if ddClient == nil {
		return
	}
	if err := ddClient.Count(mt.pkgName+"."+key, int64(val), mt.parseTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpSum failed")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *metrics) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if ddClient == nil {
		return
	}
	if err := ddClient.Histogram(mt.pkgName+"."+key, val, mt.parseTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpHistogram failed")
	}
}

// BumpTime starts a timer for the given key. Calling End() on the returned
// value records the elapsed duration:
//
//	defer met.BumpTime("my.function").End()
func (mt *metrics) BumpTime(key string, tags ...string) Ender {
	initOnce.Do(initDDClient)
	return &timeTracker{
		start: time.Now(),
		key:   mt.pkgName + "." + key,
		tags:  mt.parseTags(tags),
	}
}

// parseTags folds ("k1", "v1", "k2", "v2") pairs into datadog "k:v" tags
func (mt *metrics) parseTags(tags []string) []string {
	out := append([]string{}, mt.tags...)
	for i := 0; i+1 < len(tags); i += 2 {
		out = append(out, tags[i]+":"+tags[i+1])
	}
	return out
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	if ddClient == nil {
		return
	}
	dur := float64(time.Since(t.start)) / float64(time.Millisecond)
	if err := ddClient.TimeInMilliseconds(t.key, dur, t.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key}).Error("BumpTime failed")
	}
}
