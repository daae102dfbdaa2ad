package config

import (
	"fmt"
	"strings"
)

const (
	minURILength       = 64
	minUserAgentLength = 32
	minRefererLength   = 64
	minRemoteIPLength  = 15
	minJwtSecretLength = 32
)

// Validate checks a loaded configuration for values the framework
// cannot operate with.
func Validate(cfg *Config) error {
	if err := validateApp(cfg); err != nil {
		return err
	}
	if err := validateServer(cfg); err != nil {
		return err
	}
	if err := validateEndpoints(cfg); err != nil {
		return err
	}
	if err := validateJwt(cfg); err != nil {
		return err
	}
	if err := validateLogLimits(cfg); err != nil {
		return err
	}
	return validateBlockIp(cfg)
}

func validateApp(cfg *Config) error {
	if cfg.App.Title == "" {
		return fmt.Errorf("app.title cannot be empty")
	}
	if cfg.App.Version == "" {
		return fmt.Errorf("app.version cannot be empty")
	}
	return nil
}

func validateServer(cfg *Config) error {
	s := cfg.Server
	if s.Addr == "" {
		return fmt.Errorf("server.addr cannot be empty")
	}
	if s.ReadTimeout.Duration <= 0 ||
		s.ReadHeaderTimeout.Duration <= 0 ||
		s.WriteTimeout.Duration <= 0 ||
		s.IdleTimeout.Duration <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	if s.ShutdownGracefulTimeout.Duration <= 0 {
		return fmt.Errorf("server.shutdown_graceful_timeout must be positive")
	}
	if s.EnableAutoTLS {
		if len(s.AutoTLSDomains) == 0 {
			return fmt.Errorf("server.auto_tls_domains required when auto TLS is enabled")
		}
		if s.AutoTLSCacheDir == "" {
			return fmt.Errorf("server.auto_tls_cache_dir required when auto TLS is enabled")
		}
	}
	return nil
}

func validateEndpoints(cfg *Config) error {
	endpoints := map[string]string{
		"endpoints.routes":  cfg.Endpoints.Routes,
		"endpoints.openapi": cfg.Endpoints.OpenAPI,
		"endpoints.health":  cfg.Endpoints.Health,
		"endpoints.favicon": cfg.Endpoints.Favicon,
		"endpoints.metrics": cfg.Endpoints.Metrics,
	}
	for name, path := range endpoints {
		// empty disables the handler
		if path == "" {
			continue
		}
		if !strings.HasPrefix(path, "/") {
			return fmt.Errorf("%s must start with '/': %q", name, path)
		}
	}
	return nil
}

func validateJwt(cfg *Config) error {
	// An empty secret disables the auth middleware entirely.
	if cfg.Jwt.AuthSecret == "" {
		return nil
	}
	if len(cfg.Jwt.AuthSecret) < minJwtSecretLength {
		return fmt.Errorf("jwt.auth_secret must be at least %d bytes", minJwtSecretLength)
	}
	if cfg.Jwt.AuthTokenDuration.Duration <= 0 {
		return fmt.Errorf("jwt.auth_token_duration must be positive")
	}
	return nil
}

func validateLogLimits(cfg *Config) error {
	if !cfg.Log.Request.Activated {
		return nil
	}
	l := cfg.Log.Request.Limits
	if l.URILength < minURILength {
		return fmt.Errorf("log.request.limits.uri_length must be at least %d", minURILength)
	}
	if l.UserAgentLength < minUserAgentLength {
		return fmt.Errorf("log.request.limits.user_agent_length must be at least %d", minUserAgentLength)
	}
	if l.RefererLength < minRefererLength {
		return fmt.Errorf("log.request.limits.referer_length must be at least %d", minRefererLength)
	}
	if l.RemoteIPLength < minRemoteIPLength {
		return fmt.Errorf("log.request.limits.remote_ip_length must be at least %d", minRemoteIPLength)
	}
	return nil
}

func validateBlockIp(cfg *Config) error {
	if !cfg.BlockIp.Activated {
		return nil
	}
	b := cfg.BlockIp
	if b.K <= 0 || b.WindowSize <= 0 || b.TickSize <= 0 {
		return fmt.Errorf("block_ip.k, block_ip.window_size and block_ip.tick_size must be positive")
	}
	return nil
}
