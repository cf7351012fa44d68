/*
Package config provides type-safe configuration extraction from map[string]any.

# Overview

config wraps a map[string]any and provides typed accessor methods that handle
missing keys and type mismatches gracefully by returning default values.
This is useful for extracting dispatcher settings from YAML/JSON structures
without verbose type assertions and nil checks.

# Basic Usage

Create a Config from any map and extract values with defaults:

	cfg := config.New(map[string]any{
	    "tracing":          true,
	    "default_priority": "high",
	    "shutdown_grace":   "5s",
	})

	tracing := cfg.Bool("tracing", false)                // true
	priority := cfg.String("default_priority", "normal") // "high"
	grace := cfg.Duration("shutdown_grace", time.Second) // 5s
	missing := cfg.Int("missing", 42)                    // 42

# Type Coercion

Duration handles multiple input types:
  - string: parsed with time.ParseDuration ("30s", "1h30m")
  - int/float64: interpreted as seconds
  - time.Duration: used directly

Numeric types handle reasonable conversions:
  - int from float64 (only without a fractional part)
  - float64 from int

All methods return the default value if:
  - The key is missing
  - The value cannot be converted to the requested type
  - The conversion would lose precision (e.g., float to int with fraction)

# Nested Sections

Hosts usually keep dispatcher settings under one section of a larger
config file. Sub extracts a nested map as a Config:

	events := cfg.Sub("events")
	tracing := events.Bool("tracing", false)

Sub never fails; missing or non-map values yield an empty Config.

# File Loading

Load configuration from YAML or JSON files:

	cfg, err := config.FromFile("config.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	// Or load from bytes
	cfg, err = config.FromYAML(yamlBytes)
	cfg, err = config.FromJSON(jsonBytes)

# Thread Safety

Config is safe for concurrent read access. The underlying map is not
modified after creation. However, if the original map is modified
externally, behavior is undefined.
*/
package config
