package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
)

// Config holds the driver configuration.
type Config struct {
	Input      string
	Output     string
	PNG        string
	PNGScale   int
	Iterations int // -1 keeps the count stored in the input file
	LogLevel   string
}

// configResolver defines how to resolve a single configuration value.
type configResolver struct {
	flagName    string
	envVarName  string
	defaultVal  string
	description string
	setter      func(*Config, string) error
}

func resolvers() []configResolver {
	return []configResolver{
		{
			flagName:    "in",
			envVarName:  "LIFE_INPUT",
			description: "input world file (.xml or .json)",
			setter:      func(c *Config, v string) error { c.Input = v; return nil },
		},
		{
			flagName:    "out",
			envVarName:  "LIFE_OUTPUT",
			defaultVal:  "out.xml",
			description: "output world file (.xml or .json)",
			setter:      func(c *Config, v string) error { c.Output = v; return nil },
		},
		{
			flagName:    "png",
			envVarName:  "LIFE_PNG",
			description: "optional PNG snapshot of the final generation",
			setter:      func(c *Config, v string) error { c.PNG = v; return nil },
		},
		{
			flagName:    "png-scale",
			envVarName:  "LIFE_PNG_SCALE",
			defaultVal:  "4",
			description: "pixels per cell in the PNG snapshot",
			setter: func(c *Config, v string) error {
				n, err := strconv.Atoi(v)
				if err != nil || n < 1 {
					return fmt.Errorf("png-scale must be a positive integer, got %q", v)
				}
				c.PNGScale = n
				return nil
			},
		},
		{
			flagName:    "iterations",
			envVarName:  "LIFE_ITERATIONS",
			description: "override the iteration count from the input file",
			setter: func(c *Config, v string) error {
				if v == "" {
					c.Iterations = -1
					return nil
				}
				n, err := strconv.Atoi(v)
				if err != nil || n < 0 {
					return fmt.Errorf("iterations must be a non-negative integer, got %q", v)
				}
				c.Iterations = n
				return nil
			},
		},
		{
			flagName:    "log-level",
			envVarName:  "LIFE_LOG_LEVEL",
			defaultVal:  "info",
			description: "log level: debug, info, warn, error",
			setter:      func(c *Config, v string) error { c.LogLevel = v; return nil },
		},
	}
}

// loadConfig resolves every option from flags, then the environment, then
// the default.
func loadConfig(fs *flag.FlagSet, args []string, getenv func(string) string) (Config, error) {
	cfg := Config{}
	rs := resolvers()

	flagVars := make(map[string]*string, len(rs))
	for _, r := range rs {
		flagVars[r.flagName] = fs.String(r.flagName, "", r.description)
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	for _, r := range rs {
		value := r.defaultVal
		if v := *flagVars[r.flagName]; v != "" {
			value = v
		} else if v := getenv(r.envVarName); v != "" {
			value = v
		}
		if err := r.setter(&cfg, value); err != nil {
			return Config{}, err
		}
	}

	if cfg.Input == "" {
		return Config{}, errors.New("an input file is required (-in or LIFE_INPUT)")
	}
	return cfg, nil
}
