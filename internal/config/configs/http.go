package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. Timeouts bound slow clients and
// ShutdownTimeout bounds graceful shutdown.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// AllowedOrigins lists the browser origins allowed by CORS. An empty
	// list disables CORS headers.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// TrustProxyHeaders takes the client address from X-Forwarded-For /
	// X-Real-IP. Enable only behind a proxy that overwrites them.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}
