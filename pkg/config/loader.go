package config

import (
	"errors"
	"os"

	garnixerrors "github.com/arthur-debert/garnix/pkg/errors"
	"github.com/arthur-debert/garnix/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Source tells where a loaded configuration came from
type Source int

const (
	// SourceDefaults means no config file exists and DefaultConfig is used
	SourceDefaults Source = iota
	// SourceFile means the config was read from the file
	SourceFile
	// SourceNull means the file holds an explicit null document
	SourceNull
)

func (s Source) String() string {
	switch s {
	case SourceDefaults:
		return "defaults"
	case SourceFile:
		return "file"
	case SourceNull:
		return "null"
	default:
		return "unknown"
	}
}

// MarshalText writes the source name
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads the configuration at path. A missing file yields DefaultConfig,
// an explicit null document yields a nil config.
func Load(path string) (*Config, Source, error) {
	logger := logging.GetLogger("config.loader")

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("No config file, using defaults")
			return DefaultConfig(), SourceDefaults, nil
		}
		return nil, SourceDefaults, garnixerrors.Wrapf(err, garnixerrors.ErrConfigLoad, "failed to stat %s", path)
	}

	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, SourceFile, garnixerrors.Wrapf(err, garnixerrors.ErrConfigLoad, "failed to read %s", path)
	}

	cfg, src, err := Parse(data)
	if err != nil {
		return nil, src, garnixerrors.Wrapf(err, garnixerrors.GetErrorCode(err), "failed to load %s", path).
			WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Str("source", src.String()).
		Msg("Loaded config")
	return cfg, src, nil
}

// Parse decodes garnix.yaml content
func Parse(data []byte) (*Config, Source, error) {
	null, err := isNullDocument(data)
	if err != nil {
		return nil, SourceFile, garnixerrors.Wrap(err, garnixerrors.ErrConfigParse, "invalid YAML")
	}
	if null {
		return nil, SourceNull, nil
	}

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, yaml.Parser()); err != nil {
		return nil, SourceFile, garnixerrors.Wrap(err, garnixerrors.ErrConfigParse, "invalid YAML")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:     &cfg,
			DecodeHook: decodeHooks(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, SourceFile, garnixerrors.Wrap(err, garnixerrors.ErrConfigParse, "failed to decode config")
	}

	// An absent or null builds key keeps the default rule
	if k.Get("builds") == nil {
		cfg.Builds = DefaultConfig().Builds
	}

	if err := Validate(&cfg); err != nil {
		return nil, SourceFile, err
	}

	return &cfg, SourceFile, nil
}

// isNullDocument reports whether data is a YAML document holding only null.
// Empty documents are not null.
func isNullDocument(data []byte) (bool, error) {
	var doc yamlv3.Node
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return false, err
	}
	if doc.Kind != yamlv3.DocumentNode || len(doc.Content) != 1 {
		return false, nil
	}
	root := doc.Content[0]
	return root.Kind == yamlv3.ScalarNode && root.Tag == "!!null", nil
}

// Marshal renders a config as YAML, with builds in list form
func Marshal(cfg *Config) ([]byte, error) {
	out, err := yamlv3.Marshal(cfg)
	if err != nil {
		return nil, garnixerrors.Wrap(err, garnixerrors.ErrInternal, "failed to render config")
	}
	return out, nil
}
