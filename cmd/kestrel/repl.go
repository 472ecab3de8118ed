package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/mliezun/kestrel/internal"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

const (
	historyFile = ".kestrel_history"
	prompt      = "kestrel> "
)

func runREPL(cfg internal.Config, logger *logrus.Logger, out io.Writer) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	session := internal.NewSession(cfg, internal.WithLogger(logger))

	for {
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(out)
			break
		}
		if err != nil {
			logger.WithError(err).Error("Cannot read input")
			return 1
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		value, err := session.Eval(line)
		if err != nil {
			fmt.Fprintln(out, color.Red(err.Error()))
			continue
		}
		fmt.Fprintln(out, formatValue(value))
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}
