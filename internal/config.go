package internal

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the lexer, the interpreter and the
// command line tool
type Config struct {
	LineTerminator string `yaml:"line_terminator"`
	LogLevel       string `yaml:"log_level"`
	Color          bool   `yaml:"color"`
}

func DefaultConfig() Config {
	return Config{
		LineTerminator: DefaultLineTerminator,
		LogLevel:       "warn",
		Color:          true,
	}
}

// LoadConfig reads a yaml file. Keys missing from the file keep their
// default value, unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: open %s", path)
	}
	defer file.Close()

	cfg, err := DecodeConfig(file)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

// DecodeConfig reads yaml from r on top of DefaultConfig
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "parse")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.LineTerminator == "" {
		return errors.New("line_terminator must not be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}

// LexerOptions returns the lexer settings this config describes
func (c Config) LexerOptions() []LexerOption {
	return []LexerOption{WithLineTerminator(c.LineTerminator)}
}

// NewLogger builds a logger writing to out at the configured level
func (c Config) NewLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "log_level")
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    !c.Color,
		DisableTimestamp: true,
	})
	return logger, nil
}
