package config

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"time"
)

// NewDefaultConfig creates a Config with sensible defaults. The JWT
// secret is randomly generated so a default config never ships a known
// key.
func NewDefaultConfig() *Config {
	return &Config{
		App: App{
			Title:   "velo",
			Version: "0.1.0",
			Debug:   false,
		},
		Server: Server{
			Addr:                    ":8080",
			ReadTimeout:             Duration{Duration: 2 * time.Second},
			ReadHeaderTimeout:       Duration{Duration: 2 * time.Second},
			WriteTimeout:            Duration{Duration: 3 * time.Second},
			IdleTimeout:             Duration{Duration: 1 * time.Minute},
			ShutdownGracefulTimeout: Duration{Duration: 15 * time.Second},
		},
		Endpoints: Endpoints{
			Routes:  "/api/routes",
			OpenAPI: "/openapi.json",
			Health:  "/api/health",
			Favicon: "/favicon.ico",
			Metrics: "/metrics",
		},
		Jwt: Jwt{
			AuthSecret:        randomSecret(32),
			AuthTokenDuration: Duration{Duration: 45 * time.Minute},
		},
		Log: Log{
			Level: LogLevel{Level: slog.LevelInfo},
			Request: LogRequest{
				Activated: true,
				Limits: LogRequestLimits{
					URILength:       512,
					UserAgentLength: 256,
					RefererLength:   512,
					RemoteIPLength:  64,
				},
			},
		},
		Metrics: Metrics{
			Activated: true,
		},
		BlockIp: BlockIp{
			Activated:  false,
			K:          10,
			WindowSize: 6,
			TickSize:   1000,
		},
		Limits: Limits{
			MaxRequestBody: 1 << 20, // 1MB
		},
	}
}

func randomSecret(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
