package conf

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_CORPUS     = "en.tr100"
	DEFAULT_ITERATIONS = 5
)

// Conf holds training settings. Keys missing from a file keep their
// defaults; command line flags are applied on top.
type Conf struct {
	Corpus     string `yaml:"corpus"`
	Iterations int    `yaml:"iterations"`
	Verbose    bool   `yaml:"verbose"`
	Normalize  bool   `yaml:"normalize"`
	Progress   bool   `yaml:"progress"`
	Limit      int    `yaml:"limit"`
}

func Default() *Conf {
	return &Conf{
		Corpus:     DEFAULT_CORPUS,
		Iterations: DEFAULT_ITERATIONS,
	}
}

func (c *Conf) Validate() error {
	if len(c.Corpus) == 0 {
		return errors.New("no corpus given")
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative, got %d", c.Iterations)
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	return nil
}

func Read(reader io.Reader) (*Conf, error) {
	c := Default()
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func ReadFile(filename string) (*Conf, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file)
}
