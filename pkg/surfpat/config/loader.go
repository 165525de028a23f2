package config

import (
	"fmt"

	"github.com/cognicore/surfpat/pkg/surfpat/annotate"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	ConfigPath    string
	GazetteerPath string
}

// Components holds all loaded configuration components
type Components struct {
	Settings  *Settings
	Gazetteer *annotate.Gazetteer
}

// Load reads all configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	cfg := Default()
	if l.ConfigPath != "" {
		var err error
		cfg, err = Load(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	settings, err := cfg.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile config: %w", err)
	}
	comp.Settings = settings

	if l.GazetteerPath != "" {
		g, err := annotate.Load(l.GazetteerPath)
		if err != nil {
			return nil, fmt.Errorf("load gazetteer: %w", err)
		}
		comp.Gazetteer = g
	} else {
		comp.Gazetteer = annotate.New()
	}

	return comp, nil
}
