package commons

import "time"

const (
	ServerIdleTimeout     = time.Minute
	ServerReadTimeout     = 10 * time.Second
	ServerWriteTimeout    = 30 * time.Second
	ServerShutdownTimeout = 10 * time.Second
	RateLimitBurst        = 10
)
