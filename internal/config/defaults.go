package config

import "time"

const (
	DefaultHTTPAddress      = ":3000"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultTokenDuration    = time.Hour
	DefaultPasswordHashCost = 10
	DefaultLogLevel         = "debug"

	DefaultMaxOpenConns    = 5
	DefaultMaxIdleConns    = 5
	DefaultConnMaxIdleTime = 10 * time.Second
	DefaultAcquireTimeout  = 30 * time.Second
)

// defaultConfig returns the base layer every other source is merged onto.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns:    DefaultMaxOpenConns,
				MaxIdleConns:    DefaultMaxIdleConns,
				ConnMaxIdleTime: DefaultConnMaxIdleTime,
				AcquireTimeout:  DefaultAcquireTimeout,
			},
		},
		Server: Server{
			HTTPAddress:        DefaultHTTPAddress,
			RequestTimeout:     DefaultRequestTimeout,
			CORSAllowedOrigins: []string{"*"},
		},
	}
}
