// seehuhn.de/go/lineart - vector line-art generation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads pipeline descriptions from TOML or YAML files.
//
// A configuration names a sequence of effects, each with optional fixed
// parameters, a set of parameters broadcast to all stages, the size of
// the shared result cache, and the output page layout.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/lineart"
	"seehuhn.de/go/lineart/effect"
	"seehuhn.de/go/lineart/export"
)

// ErrUnknownFormat is returned for configuration files which are neither
// TOML nor YAML.
var ErrUnknownFormat = errors.New("config: unknown format")

// Format selects the configuration file syntax.
type Format int

// These are the supported configuration formats.
const (
	TOML Format = iota + 1
	YAML
)

// FormatFromName determines the format from a file name extension.
func FormatFromName(fileName string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, fileName)
}

// Config describes a pipeline run.
type Config struct {
	// Workers bounds the number of goroutines used by each effect.  Zero
	// uses all available CPUs.
	Workers int `toml:"workers" yaml:"workers"`

	Cache   Cache          `toml:"cache" yaml:"cache"`
	Params  effect.Params  `toml:"params" yaml:"params"`
	Effects []EffectConfig `toml:"effect" yaml:"effect"`
	Output  Output         `toml:"output" yaml:"output"`
}

// Cache configures the result cache shared by all stages.
type Cache struct {
	// Capacity is the maximal number of cached results.  Zero selects the
	// default capacity, negative values disable caching.
	Capacity int `toml:"capacity" yaml:"capacity"`
}

// EffectConfig describes one pipeline stage.
type EffectConfig struct {
	Name     string        `toml:"name" yaml:"name"`
	Params   effect.Params `toml:"params" yaml:"params"`
	Disabled bool          `toml:"disabled" yaml:"disabled"`
}

// Output describes the output file.
type Output struct {
	Format   string  `toml:"format" yaml:"format"`
	Width    float64 `toml:"width" yaml:"width"`
	Height   float64 `toml:"height" yaml:"height"`
	Margin   float64 `toml:"margin" yaml:"margin"`
	PenWidth float64 `toml:"pen_width" yaml:"pen_width"`
	DPI      float64 `toml:"dpi" yaml:"dpi"`
}

// Load reads the named configuration file.
func Load(fileName string) (*Config, error) {
	format, err := FormatFromName(fileName)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return cfg, nil
}

// Parse decodes a configuration.  Unknown fields are an error.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := &Config{}
	switch format {
	case TOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) check() error {
	if cfg.Workers < 0 {
		return fmt.Errorf("config: negative worker count %d", cfg.Workers)
	}
	for i, e := range cfg.Effects {
		if e.Name == "" {
			return fmt.Errorf("config: effect %d has no name", i)
		}
	}
	if cfg.Output.Format != "" {
		if _, err := export.ParseFormat(cfg.Output.Format); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

// Pipeline builds the pipeline described by cfg, using the effects in
// reg.  All stages share one result cache; every stage is wrapped so that
// its fixed parameters are applied before the cache lookup.
func (cfg *Config) Pipeline(reg *effect.Registry) (*effect.Pipeline, error) {
	var shared *effect.ResultCache
	if cfg.Cache.Capacity >= 0 {
		shared = effect.NewResultCache(cfg.Cache.Capacity)
	}

	log := lineart.Logger()
	pl := effect.NewPipeline()
	for i, ec := range cfg.Effects {
		if ec.Disabled {
			log.Warn("skipping disabled effect", "stage", i, "effect", ec.Name)
			continue
		}
		e, err := reg.New(ec.Name)
		if err != nil {
			return nil, fmt.Errorf("config: stage %d: %w", i, err)
		}
		if shared != nil {
			e = effect.NewCached(e, shared)
		}
		if len(ec.Params) > 0 {
			e = &effect.Bound{Effect: e, Fixed: ec.Params}
		}
		pl.Add(e)
	}
	pl.SetWorkers(cfg.Workers)
	return pl, nil
}

// ExportOptions returns the page layout for the output file.
func (cfg *Config) ExportOptions() export.Options {
	return export.Options{
		Width:    cfg.Output.Width,
		Height:   cfg.Output.Height,
		Margin:   cfg.Output.Margin,
		PenWidth: cfg.Output.PenWidth,
		DPI:      cfg.Output.DPI,
	}
}
