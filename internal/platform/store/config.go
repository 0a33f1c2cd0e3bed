package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ConnectRetries caps boot pings, 0 means 20
	ConnectRetries int
	// PingTimeout bounds one boot ping, 0 means 3s
	PingTimeout time.Duration
}
