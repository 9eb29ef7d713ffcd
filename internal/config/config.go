// Package config loads named curve presets for the command line tools.
//
// A preset file is YAML:
//
//	curve: mycurve
//	presets:
//	  - name: mycurve
//	    modulus: "0x3b"   # omit for a curve over the rationals
//	    a: "2"
//	    b: "3"
//	    gx: "1"           # optional generator
//	    gy: "5"
//
// Large integers should be quoted so they survive YAML decoding. Numbers are
// parsed with base prefixes (0x, 0o, 0b) allowed.
package config

import (
	"math/big"
	"sort"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/smallyu/go-ecc/pkg/ecc"
)

var log = logging.Logger("config")

// EnvPrefix is the prefix of environment overrides, e.g. ECC_CURVE.
const EnvPrefix = "ECC"

// Config is the decoded configuration.
type Config struct {
	Curve    string   `mapstructure:"curve"`
	LogLevel string   `mapstructure:"log_level"`
	Presets  []Preset `mapstructure:"presets"`
}

// New returns a viper instance with defaults and environment overrides set
// up. Flags may be bound to it before Load is called.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("curve", "book223")
	v.SetDefault("log_level", "warn")
	v.SetDefault("presets", []interface{}{})

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	return v
}

// Load reads path, if non-empty, into v and decodes the result. Unknown keys
// are rejected.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
		log.Infof("loaded config from %s", path)
	}

	var conf Config
	if err := decode(v.AllSettings(), &conf); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	for i, p := range conf.Presets {
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "preset %d", i)
		}
	}
	return &conf, nil
}

func decode(input interface{}, output interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// Preset looks a preset up by name. Presets from the file shadow the
// built-in ones.
func (c *Config) Preset(name string) (Preset, error) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, nil
		}
	}
	if p, ok := builtin()[name]; ok {
		return p, nil
	}
	return Preset{}, ecc.NewOpError("config.Preset", ecc.ErrInvalidParameters, "unknown preset %q", name)
}

// Names lists every preset available, sorted.
func (c *Config) Names() []string {
	seen := make(map[string]bool)
	for name := range builtin() {
		seen[name] = true
	}
	for _, p := range c.Presets {
		seen[p.Name] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseInt parses a decimal or base-prefixed integer.
func ParseInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, ecc.NewOpError("config.ParseInt", ecc.ErrInvalidParameters, "%q is not an integer", s)
	}
	return v, nil
}
