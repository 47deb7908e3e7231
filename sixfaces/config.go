package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/bmatsuo/mobile-gl-shapes/triangle"
)

// Config holds the command line options of the demo.
type Config struct {
	Tags     []int
	LogLevel string
	ShowFPS  bool
}

func NewDefaultConfig() Config {
	return Config{
		Tags:     []int{1, 2, 3, 4, 5, 6},
		LogLevel: zerolog.InfoLevel.String(),
		ShowFPS:  true,
	}
}

func (c *Config) AddFlags(fs *pflag.FlagSet) *Config {
	fs.IntSliceVarP(&c.Tags, "tags", "t", c.Tags, "Triangle configurations to draw (1-6)")
	fs.StringVarP(&c.LogLevel, "log-level", "", c.LogLevel, "Log level (trace, debug, info, warn, error)")
	fs.BoolVarP(&c.ShowFPS, "fps", "", c.ShowFPS, "Draw the frame rate overlay")
	return c
}

// Variants resolves the configured tags.  Duplicates are dropped.
func (c *Config) Variants() ([]triangle.Variant, error) {
	var vs []triangle.Variant
	seen := map[triangle.Variant]bool{}
	for _, tag := range c.Tags {
		v, err := triangle.ParseTag(tag)
		if err != nil {
			return nil, err
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		vs = append(vs, v)
	}
	if len(vs) == 0 {
		return nil, fmt.Errorf("no triangles configured")
	}
	return vs, nil
}

func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}
