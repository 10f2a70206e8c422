package configs

import "time"

// Redis configures the optional Redis-backed lookup cache and rate limiter.
// Leaving Addr empty disables both; the service then reads straight from
// PostgreSQL and the admin API is unthrottled.
type Redis struct {
	// Addr is the Redis host:port. Empty disables Redis entirely.
	Addr string `env:"ADDR" envDefault:""`
	// CacheTTL bounds how long brand/campaign lookups are cached. A
	// deactivated entity keeps resolving for at most this long.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	// RateLimit is the number of admin API requests allowed per client IP
	// per RateWindow.
	RateLimit  int           `env:"RATE_LIMIT" envDefault:"60"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
}

// Enabled reports whether a Redis address was configured.
func (c Redis) Enabled() bool { return c.Addr != "" }
