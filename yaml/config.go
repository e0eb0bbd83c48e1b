// Package yaml loads and writes razorgen configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"github.com/fwojciec/razorgen"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = "razorgen.yaml"

// LoadConfig reads the configuration file at path. Fields missing from the
// file keep their default values. Returns ENOTFOUND if the file does not exist.
func LoadConfig(path string) (razorgen.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return razorgen.Config{}, razorgen.Errorf(razorgen.ENOTFOUND, "config file %q not found", path)
	}
	if err != nil {
		return razorgen.Config{}, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML document onto the default configuration.
// Unknown keys are rejected.
func ParseConfig(data []byte) (razorgen.Config, error) {
	cfg := razorgen.DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return razorgen.Config{}, razorgen.Errorf(razorgen.EINVALID, "invalid config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return razorgen.Config{}, err
	}
	return cfg, nil
}

// WriteConfig writes cfg to path as YAML, replacing any existing file.
func WriteConfig(path string, cfg razorgen.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
