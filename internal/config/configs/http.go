package configs

import (
	"fmt"
	"time"
)

// HTTP defines configuration for the HTTP server. Host and Port specify
// where the server binds; an empty host listens on every interface.
// ShutdownTimeout bounds graceful shutdown.
type HTTP struct {
	Host string `env:"HOST"`
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port              uint16        `env:"PORT" envDefault:"8080"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ListenAddr returns the host:port pair for http.Server.
func (c HTTP) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
