package life

import "strconv"

// Config controls the dimensions and random seeding of a Life world.
type Config struct {
	Size    int
	Species int
	Density float64
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Size: 64, Species: 3, Density: 0.3, Seed: 42}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Invalid values are ignored and keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["species"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Species = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
