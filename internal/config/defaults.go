package config

import "time"

const (
	dotEnvFile = ".env"

	defaultDSN            = "/tmp/test.db"
	defaultHost           = "0.0.0.0"
	defaultPort           = 3000
	defaultLogLevel       = "debug"
	defaultSWAPIURL       = "https://swapi.dev/api"
	defaultSWAPITimeout   = 15 * time.Second
	defaultHealthInterval = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Server: Server{
			Host: defaultHost,
			Port: defaultPort,
		},
		Adapter: Adapter{
			SWAPIURL:       defaultSWAPIURL,
			RequestTimeout: defaultSWAPITimeout,
		},
		Workers: Workers{
			HealthInterval: defaultHealthInterval,
		},
	}
}
