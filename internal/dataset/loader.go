package dataset

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Load parses and validates a network YAML file.
func Load(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(data)
}

// Parse decodes a network document and checks its invariants: valid
// stop records, every route naming at least two known stops, and no
// stop repeated within one route.
func Parse(data []byte) (*Network, error) {
	var net Network
	if err := yaml.Unmarshal(data, &net); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}

	known := make(map[string]bool, len(net.Stops))
	for i, s := range net.Stops {
		if err := validate.Struct(s); err != nil {
			return nil, fmt.Errorf("stop %d (%s): %w", i, s.ID, err)
		}
		if known[s.NameEN] {
			return nil, fmt.Errorf("stop %d: duplicate stop name %q", i, s.NameEN)
		}
		known[s.NameEN] = true
	}

	for i, r := range net.Routes {
		if err := validate.Struct(r); err != nil {
			return nil, fmt.Errorf("route %d (%s): %w", i, r.ID, err)
		}
		seen := make(map[string]bool, len(r.Stops))
		for _, name := range r.Stops {
			if !known[name] {
				return nil, fmt.Errorf("route %s: unknown stop %q", r.ID, name)
			}
			if seen[name] {
				return nil, fmt.Errorf("route %s: stop %q listed twice", r.ID, name)
			}
			seen[name] = true
		}
	}

	return &net, nil
}
