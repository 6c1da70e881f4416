package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"ttc/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	ViewportConfig struct {
		Width  int `yaml:"width" validate:"min=1"`
		Height int `yaml:"height" validate:"min=1"`
	}

	ImagesConfig struct {
		Scale        bool `yaml:"scale"`
		RasterizeSVG bool `yaml:"rasterize_svg"`
	}

	CompilerConfig struct {
		Profile  common.Profile  `yaml:"profile" validate:"gte=0"`
		Viewport ViewportConfig  `yaml:"viewport"`
		Overflow common.Overflow `yaml:"overflow" validate:"gte=0"`
		// empty keeps profile default
		ShowBackground string       `yaml:"show_background,omitempty" validate:"omitempty,oneof=always whenActive"`
		UserStyle      string       `yaml:"user_style,omitempty"`
		Images         ImagesConfig `yaml:"images"`
	}

	OutputConfig struct {
		Format                common.OutputFmt `yaml:"format" validate:"gte=0"`
		NameTemplate          string           `yaml:"name_template"`
		FileNameTransliterate bool             `yaml:"file_name_transliterate"`
		Indent                bool             `yaml:"indent"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Compiler  CompilerConfig `yaml:"compiler"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	NameTemplateFieldName TemplateFieldName = "name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(NameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
		if !cfg.Compiler.Profile.IsValid() {
			return nil, fmt.Errorf("unsupported profile %s", cfg.Compiler.Profile)
		}
		if !cfg.Output.Format.IsValid() {
			return nil, fmt.Errorf("unsupported output format %s", cfg.Output.Format)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
