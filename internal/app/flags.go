package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"ropeswing/internal/swing"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment key the config reads.
const EnvPrefix = "ROPESWING_"

const paramEnvPrefix = EnvPrefix + "PARAM_"

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Seed      int64
	TPS       int
	Width     int
	Height    int
	StorePath string
	FeedAddr  string
	Sound     bool
	// Params are swing.FromMap overrides keyed like "gravity".
	Params map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 1337, TPS: 60, Width: 1280, Height: 720, Sound: true, Params: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for anchor generation")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "w", c.Width, "viewport width")
	fs.IntVar(&c.Height, "h", c.Height, "viewport height")
	fs.StringVar(&c.StorePath, "store", c.StorePath, "high score file (empty for the user config dir)")
	fs.StringVar(&c.FeedAddr, "feed", c.FeedAddr, "serve the spectator websocket feed on this address")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound cues")
	fs.Func("param", "physics override as key=value (repeatable)", func(s string) error {
		key, value, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return fmt.Errorf("param %q: want key=value", s)
		}
		c.setParam(key, value)
		return nil
	})
}

// LoadEnv reads ROPESWING_* settings from the given dotenv files and then
// from the process environment, which wins. Missing files are skipped.
func (c *Config) LoadEnv(paths ...string) error {
	env := map[string]string{}
	for _, p := range paths {
		vals, err := godotenv.Read(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("app: read %s: %w", p, err)
		}
		for k, v := range vals {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return c.ApplyEnv(env)
}

// ApplyEnv copies recognised keys from env into the config.
func (c *Config) ApplyEnv(env map[string]string) error {
	var errs []error
	for k, v := range env {
		if !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		if strings.HasPrefix(k, paramEnvPrefix) {
			c.setParam(strings.ToLower(strings.TrimPrefix(k, paramEnvPrefix)), v)
			continue
		}
		var err error
		switch strings.TrimPrefix(k, EnvPrefix) {
		case "SEED":
			err = setInt64(&c.Seed, v)
		case "TPS":
			err = setInt(&c.TPS, v)
		case "WIDTH":
			err = setInt(&c.Width, v)
		case "HEIGHT":
			err = setInt(&c.Height, v)
		case "STORE":
			c.StorePath = v
		case "FEED":
			c.FeedAddr = v
		case "SOUND":
			var b bool
			if b, err = strconv.ParseBool(v); err == nil {
				c.Sound = b
			}
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("app: %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

// Swing builds the session configuration from the flag values.
func (c *Config) Swing() swing.Config {
	m := make(map[string]string, len(c.Params)+3)
	for k, v := range c.Params {
		m[k] = v
	}
	m["seed"] = strconv.FormatInt(c.Seed, 10)
	m["w"] = strconv.Itoa(c.Width)
	m["h"] = strconv.Itoa(c.Height)
	return swing.FromMap(m)
}

func (c *Config) setParam(key, value string) {
	if c.Params == nil {
		c.Params = map[string]string{}
	}
	c.Params[key] = value
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(v)
	if err == nil {
		*dst = n
	}
	return err
}

func setInt64(dst *int64, v string) error {
	n, err := strconv.ParseInt(v, 10, 64)
	if err == nil {
		*dst = n
	}
	return err
}
