package browsename

import (
	"bytes"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// LoadError describes a configuration that could not be loaded.
type LoadError struct {
	// File is the path of the configuration file (empty for in-memory data).
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.File == "" {
		return msg
	}
	return e.File + ": " + msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// fileConfig is the YAML representation of a parser configuration.
//
//	separators: "./"
//	da:
//	  group_prefix: "G."
//	  item_separator: "."
type fileConfig struct {
	Separators string  `yaml:"separators"`
	DA         *fileDA `yaml:"da,omitempty"`
}

type fileDA struct {
	GroupPrefix   string `yaml:"group_prefix"`
	ItemSeparator string `yaml:"item_separator"`
}

// ParseConfig parses a YAML configuration. It returns DASettings when a "da"
// section is present and Settings otherwise.
func ParseConfig(data []byte) (Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var fc fileConfig
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Message: "empty configuration"}
		}
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}

	if !utf8.ValidString(fc.Separators) {
		return nil, &LoadError{Message: "separators must be valid UTF-8"}
	}

	base := Settings{SeparatorCharsValue: fc.Separators}
	if fc.DA == nil {
		return base, nil
	}
	return DASettings{
		Settings:           base,
		GroupPrefixValue:   fc.DA.GroupPrefix,
		ItemSeparatorValue: fc.DA.ItemSeparator,
	}, nil
}

// LoadConfig loads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
		}
		return nil, err
	}
	return cfg, nil
}

// MarshalConfig renders cfg in the format read by ParseConfig.
func MarshalConfig(cfg Config) ([]byte, error) {
	var fc fileConfig
	if cfg != nil {
		fc.Separators = string(cfg.SeparatorChars())
	}
	if da, ok := cfg.(DAConfig); ok {
		fc.DA = &fileDA{
			GroupPrefix:   da.GroupPrefix(),
			ItemSeparator: da.ItemSeparator(),
		}
	}
	return yaml.Marshal(&fc)
}
