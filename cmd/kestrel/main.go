package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"
	"github.com/mliezun/kestrel/internal"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const usage = `Usage: kestrel [-config file.yml] <command> [/path/to/source.ks]

Commands:
  run     evaluate a source file
  tokens  print the tokens of a source file
  ast     print the syntax tree of a source file
  repl    start an interactive session`

func main() {
	configPath := flag.String("config", "", "path to a yaml configuration file")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
	}
	flag.Parse()

	cfg := internal.DefaultConfig()
	if *configPath != "" {
		loaded, err := internal.LoadConfig(*configPath)
		if err != nil {
			logrus.WithError(err).Fatal("Cannot load configuration")
		}
		cfg = loaded
	}

	logger, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("Cannot create logger")
	}
	if cfg.Color {
		color.Enable()
	} else {
		color.Disable()
	}

	os.Exit(run(cfg, logger, flag.Args(), os.Stdout))
}

func run(cfg internal.Config, logger *logrus.Logger, args []string, out io.Writer) int {
	if len(args) == 1 && args[0] == "repl" {
		return runREPL(cfg, logger, out)
	}
	if len(args) != 2 {
		fmt.Fprintln(out, usage)
		return 2
	}

	command, path := args[0], args[1]
	source, absPath, err := readSource(path)
	if err != nil {
		logger.WithError(err).Error("Cannot read source")
		return 1
	}
	log := logger.WithField("file", absPath)

	switch command {
	case "tokens":
		tokens, err := internal.Tokenize(source, cfg.LexerOptions()...)
		if err != nil {
			return report(log, out, err)
		}
		printTokens(out, tokens)
	case "ast":
		program, err := internal.ParseSource(source, cfg.LexerOptions()...)
		if err != nil {
			return report(log, out, err)
		}
		for _, st := range program.Body {
			fmt.Fprintln(out, internal.Sprint(st))
		}
	case "run":
		value, _, err := internal.RunSource(source, cfg, internal.WithLogger(logger))
		if err != nil {
			return report(log, out, err)
		}
		fmt.Fprintln(out, formatValue(value))
	default:
		fmt.Fprintln(out, usage)
		return 2
	}
	return 0
}

func readSource(path string) (string, string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", "", errors.Wrapf(err, "resolve %s", path)
	}
	b, err := os.ReadFile(absPath)
	if err != nil {
		return "", absPath, errors.Wrapf(err, "read %s", absPath)
	}
	return string(b), absPath, nil
}

// report is the one place where errors from the interpreter become output
func report(log *logrus.Entry, out io.Writer, err error) int {
	log.WithError(err).Debug("Evaluation failed")
	fmt.Fprintln(out, color.Red(err.Error()))
	return 1
}

func printTokens(out io.Writer, tokens []internal.Token) {
	for _, tk := range tokens {
		fmt.Fprintf(out, "%-8s %s %q\n", tk.Pos, color.Cyan(fmt.Sprintf("%-16s", tk.Type)), tk.Lexeme)
	}
}

func formatValue(v internal.Value) string {
	if s, ok := v.(internal.StringValue); ok {
		return color.Green(s.Repr())
	}
	return color.Blue(v.String())
}
