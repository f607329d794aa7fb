// Package config holds the command-line and file configuration shared by the
// frontends.
package config

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"lifegrid/internal/sim"
	"lifegrid/pkg/life"
)

// Config represents the parameters for a Life session and its frontend.
type Config struct {
	Rows       int           `json:"rows"`
	Cols       int           `json:"cols"`
	Density    float64       `json:"density"`
	Interval   time.Duration `json:"interval"`
	Scale      int           `json:"scale"`
	Seed       int64         `json:"seed"`
	ManualStep bool          `json:"manual_step"`
	Workers    int           `json:"workers"`
	History    int           `json:"history"`
	Pattern    string        `json:"pattern"`
	Random     bool          `json:"random"`
}

// NewConfig returns a Config populated with the defaults of the browser
// version: a 100x162 board ticking every millisecond.
func NewConfig() *Config {
	return &Config{
		Rows:     100,
		Cols:     162,
		Density:  life.DefaultDensity,
		Interval: time.Millisecond,
		Scale:    6,
		Seed:     time.Now().UnixNano(),
		History:  sim.DefaultHistory,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "number of grid rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "number of grid columns")
	fs.Float64Var(&c.Density, "density", c.Density, "random seeding threshold; a cell starts alive when its draw exceeds it")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations while running")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.BoolVar(&c.ManualStep, "step", c.ManualStep, "show the manual step control")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed in parallel per generation (0 or 1 = serial)")
	fs.IntVar(&c.History, "history", c.History, "generations remembered for still/oscillator detection")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "ASCII pattern file loaded at the centre of the board")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random board instead of an empty one")
}

// LoadFile overlays the JSON file at path onto c. Durations accept either
// nanoseconds or a string such as "150ms".
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}

	aux := struct {
		*Config
		Interval json.RawMessage `json:"interval"`
	}{Config: c}
	if err = json.Unmarshal(data, &aux); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	if len(aux.Interval) > 0 {
		if c.Interval, err = parseDuration(aux.Interval); err != nil {
			return errors.Wrapf(err, "[LoadFile] bad interval in file: %+v", path)
		}
	}
	return nil
}

func parseDuration(raw json.RawMessage) (time.Duration, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return time.ParseDuration(s)
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, errors.Errorf("interval %s is neither a duration string nor nanoseconds", raw)
	}
	return time.Duration(n), nil
}

// Validate rejects values the grid core does not handle.
func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("density %.3f outside [0,1]", c.Density)
	case c.Interval <= 0:
		return errors.Errorf("interval must be positive, got %v", c.Interval)
	case c.Scale <= 0:
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	case c.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// SessionOptions converts the configuration into sim.Options.
func (c *Config) SessionOptions() sim.Options {
	return sim.Options{
		Rows:    c.Rows,
		Cols:    c.Cols,
		Density: c.Density,
		Seed:    c.Seed,
		Workers: c.Workers,
		History: c.History,
	}
}

// NewSession builds a session and applies the initial board: the pattern
// file when set, otherwise a random board when requested.
func (c *Config) NewSession() (*sim.Session, error) {
	s := sim.NewSession(c.SessionOptions())
	switch {
	case c.Pattern != "":
		data, err := os.ReadFile(c.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "[NewSession] failed to read pattern: %+v", c.Pattern)
		}
		pattern, err := life.Parse(string(data))
		if err != nil {
			return nil, errors.Wrapf(err, "[NewSession] invalid pattern: %+v", c.Pattern)
		}
		s.Load(pattern)
	case c.Random:
		s.Randomize()
	}
	return s, nil
}

// Parse binds c to fs, loads the optional -config file and then applies the
// command-line flags on top so flags always win.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	var file string
	fs.StringVar(&file, "config", "", "JSON configuration file")
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if file == "" {
		return c.Validate()
	}

	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		if f.Name != "config" {
			explicit[f.Name] = f.Value.String()
		}
	})
	if err := c.LoadFile(file); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return errors.Wrapf(err, "[Parse] failed to re-apply flag -%s", name)
		}
	}
	return c.Validate()
}
