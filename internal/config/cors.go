package config

import (
	"os"
	"strings"
)

const corsAllowedOriginsEnv = "CORS_ALLOWED_ORIGINS"

type CORSConfig struct {
	AllowedOrigins []string
}

// LoadCORSConfig reads a comma separated origin list. Empty means CORS is disabled.
func LoadCORSConfig() *CORSConfig {
	return &CORSConfig{AllowedOrigins: splitList(os.Getenv(corsAllowedOriginsEnv))}
}

func (c *CORSConfig) Enabled() bool {
	return c != nil && len(c.AllowedOrigins) > 0
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
