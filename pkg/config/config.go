// Package config carries the settings a store node needs to come up:
// its identity, the addresses it binds, and where to find the registry.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	NodeID       string `yaml:"node_id"`
	RaftAddr     string `yaml:"raft_addr"`
	RaftData     string `yaml:"raft_data"`
	RaftLeader   bool   `yaml:"raft_leader"`
	GRPCAddr     string `yaml:"grpc_addr"`
	HTTPAddr     string `yaml:"http_addr"`
	RegistryAddr string `yaml:"registry_addr"`
}

// LoadConfig reads the YAML file at path when one is given, then lets
// environment variables override individual fields. With an empty path
// the environment is the only source. Defaults and required-field
// checks apply either way.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return nil, err
	}
	cfg.fillDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeEnv() error {
	for _, f := range []struct {
		env string
		dst *string
	}{
		{"NODE_ID", &c.NodeID},
		{"RAFT_ADDR", &c.RaftAddr},
		{"RAFT_DATA", &c.RaftData},
		{"GRPC_ADDR", &c.GRPCAddr},
		{"HTTP_ADDR", &c.HTTPAddr},
		{"REGISTRY_ADDR", &c.RegistryAddr},
	} {
		if v := os.Getenv(f.env); v != "" {
			*f.dst = v
		}
	}
	if v := os.Getenv("RAFT_LEADER"); v != "" {
		leader, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("RAFT_LEADER: %w", err)
		}
		c.RaftLeader = leader
	}
	return nil
}

// Each node gets its own data directory by default so several can run
// from one working directory during development.
func (c *Config) fillDefaults() {
	if c.RaftData == "" {
		c.RaftData = "./setkv/" + c.NodeID
	}
	if c.RegistryAddr == "" {
		c.RegistryAddr = "http://127.0.0.1:7000"
	}
}

func (c *Config) validate() error {
	for _, f := range []struct {
		name, value string
	}{
		{"node_id", c.NodeID},
		{"raft_addr", c.RaftAddr},
		{"grpc_addr", c.GRPCAddr},
		{"http_addr", c.HTTPAddr},
	} {
		if f.value == "" {
			return fmt.Errorf("config: %s is not set", f.name)
		}
	}
	return nil
}
