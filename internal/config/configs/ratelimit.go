package configs

// RateLimit configures the per-client token bucket applied to /api routes.
// A zero RequestsPerSecond disables limiting.
type RateLimit struct {
	RequestsPerSecond float64 `env:"RPS" envDefault:"10"`
	Burst             int     `env:"BURST" envDefault:"20"`
}
