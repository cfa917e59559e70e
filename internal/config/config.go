// Package config reads semload source profiles from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds a semload source profile. Values can come from a YAML
// profile, command-line flags, or the environment; flags win over the
// profile, and the environment fills in missing credentials.
type Config struct {
	// Source selects the loader: "db" or "s3".
	Source string `yaml:"source"`

	DB struct {
		URL   string `yaml:"url"`
		Query string `yaml:"query"`
	} `yaml:"db"`

	S3 struct {
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Region    string `yaml:"region"`
		Bucket    string `yaml:"bucket"`
		Key       string `yaml:"key"`
		Endpoint  string `yaml:"endpoint"`
		Protocol  string `yaml:"protocol"`
	} `yaml:"s3"`

	// Output is the CSV path to write; empty means stdout.
	Output string `yaml:"output"`
}

// Load reads a profile from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	return &cfg, nil
}
