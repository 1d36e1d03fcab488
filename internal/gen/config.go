package gen

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional soagen.yaml file. Command-line flags override it.
//
//	output: particles_soa.go
//	runtime: github.com/pavanmanishd/soa
//	tags: [integration]
//	types:
//	  - name: Particle
//	    derive: [Clone, Equal, Debug]
//	  - name: Tracked
type Config struct {
	Output  string       `yaml:"output"`
	Runtime string       `yaml:"runtime"`
	Tags    []string     `yaml:"tags"`
	Types   []TypeConfig `yaml:"types"`
}

// TypeConfig selects one record.
type TypeConfig struct {
	Name   string   `yaml:"name"`
	Derive []string `yaml:"derive"`
}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes a config document. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	for i, t := range c.Types {
		if t.Name == "" {
			return nil, fmt.Errorf("parse config: types[%d]: missing name", i)
		}
		if _, err := ParseDeriveList(t.Derive); err != nil {
			return nil, fmt.Errorf("parse config: %s: %w", t.Name, err)
		}
	}
	return &c, nil
}

// Selection turns the configured types into a Selection.
func (c *Config) Selection() Selection {
	sel := Selection{TypeDerive: make(map[string]Derive, len(c.Types))}
	for _, t := range c.Types {
		d, _ := ParseDeriveList(t.Derive) // validated by ParseConfig
		sel.Types = append(sel.Types, t.Name)
		sel.TypeDerive[t.Name] |= d
	}
	return sel
}
