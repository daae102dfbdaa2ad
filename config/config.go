package config

import (
	"log/slog"
	"time"
)

// Duration wraps time.Duration so TOML values can be written as "15s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// LogLevel wraps slog.Level for TOML ("DEBUG", "INFO", ...).
type LogLevel struct {
	slog.Level
}

// App carries the application metadata used by the generated schema and
// the debug switch.
type App struct {
	Title       string `toml:"title"`
	Version     string `toml:"version"`
	Description string `toml:"description"`
	Debug       bool   `toml:"debug"`
}

type Server struct {
	Addr                    string   `toml:"addr"`
	ReadTimeout             Duration `toml:"read_timeout"`
	ReadHeaderTimeout       Duration `toml:"read_header_timeout"`
	WriteTimeout            Duration `toml:"write_timeout"`
	IdleTimeout             Duration `toml:"idle_timeout"`
	ShutdownGracefulTimeout Duration `toml:"shutdown_graceful_timeout"`

	// ClientIpProxyHeader names the header holding the real client IP
	// when running behind a trusting proxy. Empty means use RemoteAddr.
	ClientIpProxyHeader string `toml:"client_ip_proxy_header"`

	// EnableAutoTLS turns on certificate provisioning via ACME
	// (autocert). Requires AutoTLSDomains and a writable cache dir.
	EnableAutoTLS   bool     `toml:"enable_auto_tls"`
	AutoTLSDomains  []string `toml:"auto_tls_domains"`
	AutoTLSCacheDir string   `toml:"auto_tls_cache_dir"`
}

// Endpoints are the paths of the built-in handlers. An empty path
// disables the corresponding handler.
type Endpoints struct {
	Routes  string `toml:"routes"`
	OpenAPI string `toml:"openapi"`
	Health  string `toml:"health"`
	Favicon string `toml:"favicon"`
	Metrics string `toml:"metrics"`
}

type Jwt struct {
	AuthSecret        string   `toml:"auth_secret"`
	AuthTokenDuration Duration `toml:"auth_token_duration"`
}

type LogRequestLimits struct {
	URILength       int `toml:"uri_length"`        // Minimum: 64
	UserAgentLength int `toml:"user_agent_length"` // Minimum: 32
	RefererLength   int `toml:"referer_length"`    // Minimum: 64
	RemoteIPLength  int `toml:"remote_ip_length"`  // Minimum: 15
}

type LogRequest struct {
	Activated bool             `toml:"activated"`
	Limits    LogRequestLimits `toml:"limits"`
}

type Log struct {
	Level   LogLevel   `toml:"level"`
	Request LogRequest `toml:"request"`
}

type Metrics struct {
	Activated bool `toml:"activated"`
}

// BlockIp configures the sliding top-k abuse detector.
type BlockIp struct {
	Activated bool `toml:"activated"`
	// K is how many heavy hitters the sketch tracks per window.
	K int `toml:"k"`
	// WindowSize is the number of ticks a window spans.
	WindowSize int `toml:"window_size"`
	// TickSize is how many requests advance the window by one tick.
	TickSize int `toml:"tick_size"`
}

type Limits struct {
	// MaxRequestBody caps request body size in bytes. Zero disables the cap.
	MaxRequestBody int64 `toml:"max_request_body"`
}

type Config struct {
	App       App       `toml:"app"`
	Server    Server    `toml:"server"`
	Endpoints Endpoints `toml:"endpoints"`
	Jwt       Jwt       `toml:"jwt"`
	Log       Log       `toml:"log"`
	Metrics   Metrics   `toml:"metrics"`
	BlockIp   BlockIp   `toml:"block_ip"`
	Limits    Limits    `toml:"limits"`

	// Source records where the config was loaded from. Empty for
	// defaults built in code.
	Source string `toml:"-"`
}
