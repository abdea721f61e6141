// Copyright 2025 Certen Protocol
//
// Package config loads election-node and trustee configuration from
// YAML, with ${VAR} / ${VAR:-default} environment-variable substitution
// before parsing.
package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Role is which part an electionnode process plays.
type Role string

const (
	RoleAuthority Role = "authority"
	RoleTrustee   Role = "trustee"
	RoleVerifier  Role = "verifier"
)

// NodeConfig is the top-level configuration document for an electionnode
// process.
type NodeConfig struct {
	Environment string `yaml:"environment"`

	Node      NodeSettings      `yaml:"node"`
	Store     StoreSettings     `yaml:"store"`
	Trustee   TrusteeSettings   `yaml:"trustee"`
	Monitoring MonitoringSettings `yaml:"monitoring"`
}

// NodeSettings identifies this process and its signing key.
type NodeSettings struct {
	Role           Role   `yaml:"role"`
	SigningKeyPath string `yaml:"signing_key_path"`
}

// StoreSettings selects and configures the store backend.
type StoreSettings struct {
	Backend string `yaml:"backend"` // "memory" or "kv"
	Path    string `yaml:"path"`    // KVStore data directory, ignored for memory
}

// TrusteeSettings is populated only when Node.Role == RoleTrustee.
type TrusteeSettings struct {
	Index           uint8    `yaml:"index"`
	KeyGenKeyPath   string   `yaml:"keygen_key_path"`
	ElectionID      string   `yaml:"election_id"`
}

// MonitoringSettings configures the ambient metrics/health surface.
type MonitoringSettings struct {
	Metrics MetricsSettings `yaml:"metrics"`
}

// MetricsSettings configures the Prometheus exposition endpoint.
type MetricsSettings struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// Duration wraps time.Duration so it can be written as "30s" in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Load reads path, substitutes environment variables, and parses the
// result as a NodeConfig, then applies defaults and validates it.
func Load(path string) (*NodeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	expanded := substituteEnvVars(string(data))

	var cfg NodeConfig
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *NodeConfig) applyDefaults() {
	if c.Store.Backend == "" {
		c.Store.Backend = "memory"
	}
	if c.Monitoring.Metrics.Port == 0 {
		c.Monitoring.Metrics.Port = 9090
	}
	if c.Monitoring.Metrics.Path == "" {
		c.Monitoring.Metrics.Path = "/metrics"
	}
}

// Validate rejects a config this process cannot actually run with.
func (c *NodeConfig) Validate() error {
	switch c.Node.Role {
	case RoleAuthority, RoleTrustee, RoleVerifier:
	case "":
		return fmt.Errorf("config: node.role is required")
	default:
		return fmt.Errorf("config: unknown node.role %q", c.Node.Role)
	}
	if c.Node.Role != RoleVerifier && c.Node.SigningKeyPath == "" {
		return fmt.Errorf("config: node.signing_key_path is required for role %q", c.Node.Role)
	}
	if c.Node.Role == RoleTrustee && c.Trustee.KeyGenKeyPath == "" {
		return fmt.Errorf("config: trustee.keygen_key_path is required for role trustee")
	}
	switch c.Store.Backend {
	case "memory":
	case "kv":
		if c.Store.Path == "" {
			return fmt.Errorf("config: store.path is required for the kv backend")
		}
	default:
		return fmt.Errorf("config: unknown store.backend %q", c.Store.Backend)
	}
	return nil
}

// envVarPattern matches ${VAR_NAME} or ${VAR_NAME:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		groups := envVarPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		varName := groups[1]
		defaultValue := ""
		if len(groups) >= 4 {
			defaultValue = groups[3]
		}
		if value := os.Getenv(varName); value != "" {
			return value
		}
		return defaultValue
	})
}
