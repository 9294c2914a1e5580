// Package config loads the openwith configuration: the ordered association
// table, the exclusion rules, and the confirmation flag. Configuration is
// loaded once at startup and treated as immutable for the process lifetime;
// a reload is a full re-load and re-compile, never an incremental mutation.
package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/openwith/pkg/associations"
	"github.com/arthur-debert/openwith/pkg/errors"
	"github.com/arthur-debert/openwith/pkg/logging"
)

// FileToken is the argument-template token replaced with the file path
const FileToken = "{file}"

// Config file names probed under the XDG config directory
const (
	ConfigDirName = "openwith"

	configNameTOML = "openwith.toml"
	configNameYAML = "openwith.yaml"
	configNameYML  = "openwith.yml"
)

// AssociationConfig is one association as written in the config file
type AssociationConfig struct {
	Pattern string   `koanf:"pattern" toml:"pattern"`
	Program string   `koanf:"program" toml:"program"`
	Args    []string `koanf:"args" toml:"args"`
}

// Config is the decoded configuration surface
type Config struct {
	Confirm        bool                `koanf:"confirm" toml:"confirm"`
	DebounceWindow string              `koanf:"debounce_window" toml:"debounce_window"`
	Exclude        []string            `koanf:"exclude" toml:"exclude"`
	Associations   []AssociationConfig `koanf:"associations" toml:"associations"`
}

// Runtime is the compiled, ready-to-dispatch form of a Config
type Runtime struct {
	Confirm bool
	Window  time.Duration
	Exclude []*regexp.Regexp
	Table   []associations.Association
}

// Load reads configuration from path, layered over the embedded defaults.
// An empty path discovers the user config under the XDG config directory;
// a missing user config means defaults only.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if path == "" {
		path = Discover()
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"config file not readable: %s", path)
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to parse config file: %s", path)
		}
		logger.Debug().Str("path", path).Msg("loaded user config")
	} else {
		logger.Debug().Msg("no user config found, using defaults")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}

	return &cfg, nil
}

// Discover returns the path of the first user config file that exists, or
// an empty string
func Discover() string {
	dir := filepath.Join(xdg.ConfigHome, ConfigDirName)
	for _, name := range []string{configNameTOML, configNameYAML, configNameYML} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// parserFor picks the koanf parser from the file extension
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// Compile validates the config and builds the runtime table: patterns and
// exclusion rules become compiled regular expressions, argument lists
// become tagged templates.
func (c *Config) Compile() (*Runtime, error) {
	window, err := c.window()
	if err != nil {
		return nil, err
	}

	exclude := make([]*regexp.Regexp, 0, len(c.Exclude))
	for _, pattern := range c.Exclude {
		re, compileErr := regexp.Compile(pattern)
		if compileErr != nil {
			return nil, errors.Wrapf(compileErr, errors.ErrPatternCompile,
				"invalid exclusion pattern %q", pattern)
		}
		exclude = append(exclude, re)
	}

	table := make([]associations.Association, 0, len(c.Associations))
	for i, ac := range c.Associations {
		if ac.Pattern == "" {
			return nil, errors.Newf(errors.ErrConfigValid,
				"association %d has an empty pattern", i)
		}
		if ac.Program == "" {
			return nil, errors.Newf(errors.ErrConfigValid,
				"association %d (%s) has an empty program", i, ac.Pattern)
		}
		assoc, newErr := associations.New(ac.Pattern, ac.Program, ParseArgs(ac.Args)...)
		if newErr != nil {
			return nil, errors.Wrapf(newErr, errors.ErrPatternCompile,
				"invalid association pattern %q", ac.Pattern)
		}
		table = append(table, assoc)
	}

	return &Runtime{
		Confirm: c.Confirm,
		Window:  window,
		Exclude: exclude,
		Table:   table,
	}, nil
}

// ParseArgs turns config argument strings into a tagged template: the
// FileToken becomes the file placeholder, everything else is literal
func ParseArgs(args []string) []associations.Arg {
	out := make([]associations.Arg, 0, len(args))
	for _, a := range args {
		if a == FileToken {
			out = append(out, associations.FilePlaceholder())
			continue
		}
		out = append(out, associations.Literal(a))
	}
	return out
}

// window parses the debounce window, defaulting when unset
func (c *Config) window() (time.Duration, error) {
	if c.DebounceWindow == "" {
		return 2 * time.Second, nil
	}
	d, err := time.ParseDuration(c.DebounceWindow)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrConfigValid,
			"invalid debounce_window %q", c.DebounceWindow)
	}
	return d, nil
}
