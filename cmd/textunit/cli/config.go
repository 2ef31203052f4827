package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys. Each key is also a persistent flag and can be set
// through a TEXTUNIT_ prefixed environment variable or a config file.
const (
	keyEncoding = "encoding"
	keyLogLevel = "log-level"
	keyColor    = "color"
	keyFormat   = "format"
)

// Input encodings.
const (
	encodingAuto    = "auto"
	encodingUTF8    = "utf8"
	encodingUTF16LE = "utf16le"
	encodingUTF16BE = "utf16be"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

// Config holds the settings shared by all subcommands.
type Config struct {
	Encoding string
	LogLevel string
	Color    string
	Format   string
}

func registerFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (yaml, toml or json)")
	fs.StringP(keyEncoding, "e", encodingAuto, "input encoding: auto, utf8, utf16le or utf16be")
	fs.String(keyLogLevel, "info", "log level: debug, info, warn or error")
	fs.String(keyColor, "auto", "colored log output: auto, always or never")
	fs.String(keyFormat, formatText, "output format: text or json")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("TEXTUNIT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig resolves the configuration from flags, environment and the
// optional config file, in that order of precedence.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := Config{
		Encoding: strings.ToLower(v.GetString(keyEncoding)),
		LogLevel: v.GetString(keyLogLevel),
		Color:    v.GetString(keyColor),
		Format:   strings.ToLower(v.GetString(keyFormat)),
	}

	switch cfg.Encoding {
	case encodingAuto, encodingUTF8, encodingUTF16LE, encodingUTF16BE:
	default:
		return Config{}, fmt.Errorf("unknown encoding %q", cfg.Encoding)
	}
	switch cfg.Format {
	case formatText, formatJSON:
	default:
		return Config{}, fmt.Errorf("unknown format %q", cfg.Format)
	}
	return cfg, nil
}
