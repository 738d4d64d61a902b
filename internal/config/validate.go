package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var serviceNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTTL <= 0 {
		return fmt.Errorf("auth.access_ttl must be > 0 (got %v)", c.Auth.AccessTTL)
	}

	if err := c.Broker.validate(); err != nil {
		return fmt.Errorf("broker: %w", err)
	}

	if c.Search.ScrollSize <= 0 {
		return fmt.Errorf("search.scroll_size must be > 0 (got %d)", c.Search.ScrollSize)
	}

	loc, err := time.LoadLocation(c.POS.Timezone)
	if err != nil {
		return fmt.Errorf("pos.timezone: %w", err)
	}
	if loc == time.Local || loc.String() == "Local" {
		return fmt.Errorf("pos.timezone must be an IANA zone name (got %q)", c.POS.Timezone)
	}
	c.POS.Location = loc

	for i, svc := range c.Registry.Services {
		if svc.Name == "" {
			return fmt.Errorf("registry.services[%d]: name is required", i)
		}
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (b *BrokerConfig) validate() error {
	if b.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", b.Timeout)
	}
	if !strings.Contains(b.EndpointTemplate, "{service}") {
		return fmt.Errorf("endpoint_template must contain {service} (got %q)", b.EndpointTemplate)
	}
	for name, endpoint := range b.Endpoints {
		if !serviceNamePattern.MatchString(name) {
			return fmt.Errorf("endpoints: invalid service name %q", name)
		}
		u, err := url.Parse(endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("endpoints.%s: invalid URL %q", name, endpoint)
		}
	}
	return nil
}

// Endpoint returns the base URL of a sibling service. Service names are
// lowercase letters, digits, '-' and '_'.
func (b BrokerConfig) Endpoint(service string) (string, error) {
	if !serviceNamePattern.MatchString(service) {
		return "", fmt.Errorf("invalid service name %q", service)
	}
	if endpoint, ok := b.Endpoints[service]; ok {
		return endpoint, nil
	}
	return strings.ReplaceAll(b.EndpointTemplate, "{service}", service), nil
}
