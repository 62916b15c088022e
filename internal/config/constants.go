package config

import "time"

// Default configuration values used when the corresponding environment
// variable is not set
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "stride-garden"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
	DefaultDBName      = "stridegarden"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)
