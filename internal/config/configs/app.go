package configs

import "time"

// App carries the short-link service's own settings.
type App struct {
	// BaseURL is the public origin bio pages live under; destination URLs
	// are built as {BaseURL}/biopage/{handle}.
	BaseURL string `env:"BASE_URL" envDefault:"https://biopages.mygymtools.com"`
	// LookupTimeout bounds each individual brand/campaign store lookup.
	LookupTimeout time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"3s"`
	// ClickWriteTimeout bounds each background click-event insert.
	ClickWriteTimeout time.Duration `env:"CLICK_WRITE_TIMEOUT" envDefault:"2s"`
	// ClickQueueSize is the capacity of the click recorder's buffer. When
	// full, new events are dropped rather than delaying redirects.
	ClickQueueSize int `env:"CLICK_QUEUE_SIZE" envDefault:"1024"`
	// Seed inserts demo brands and campaigns on startup.
	Seed bool `env:"SEED" envDefault:"false"`
}
