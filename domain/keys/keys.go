package keys

import "strings"

const (
	// PfxHealthCheck is used for prefixing health check cache keys
	PfxHealthCheck = "healthcheck"
	// PfxAuctions is used for prefixing cached auction listings by username
	PfxAuctions = "auctions"
	// PfxBids is used for prefixing cached bid listings by username
	PfxBids = "bids"
)

// CustomKey joins key components with the specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey joins cache key components with ":"
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}
