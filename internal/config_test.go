package internal

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = DecodeConfig(strings.NewReader("line_terminator: \"\\r\\n\"\nlog_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{LineTerminator: "\r\n", LogLevel: "debug", Color: true}, cfg)

	cfg, err = DecodeConfig(strings.NewReader("color: false"))
	require.NoError(t, err)
	assert.False(t, cfg.Color)
	assert.Equal(t, DefaultLineTerminator, cfg.LineTerminator)
}

func TestDecodeConfigErrors(t *testing.T) {
	for _, source := range []string{
		"colour: true",
		"line_terminator: \"\"",
		"log_level: loud",
		"color: [1, 2]",
	} {
		_, err := DecodeConfig(strings.NewReader(source))
		assert.Error(t, err, source)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kestrel.yml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: trace\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.LogLevel)

	_, err = LoadConfig(filepath.Join(dir, "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: open")
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestConfigLexerOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineTerminator = ";;"

	tokens, err := Tokenize("# comment ;; x", cfg.LexerOptions()...)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "x", tokens[0].Lexeme)
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "info"
	cfg.Color = false

	var out bytes.Buffer
	logger, err := cfg.NewLogger(&out)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger.Debug("hidden")
	logger.WithField("depth", 2).Info("shown")
	assert.Equal(t, "level=info msg=shown depth=2\n", out.String())

	cfg.LogLevel = "nope"
	_, err = cfg.NewLogger(&out)
	assert.Error(t, err)
}
