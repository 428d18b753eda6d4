// Package logging builds the zerolog logger used by seqtool commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"lazyseq/internal/config"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Field names shared by every command.
const (
	FieldCommand = "command"
	FieldInput   = "input"
	FieldEmitted = "emitted"
)

// New creates a logger writing to w. An unknown level falls back to info.
func New(cfg config.Log, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if strings.ToLower(cfg.Format) == FormatJSON {
		zl = zerolog.New(w)
	} else {
		zl = newConsoleLogger(w)
	}
	return zl.Level(level).With().Timestamp().Logger()
}

func newConsoleLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
		NoColor:    !isTerminal(w),
		FormatLevel: func(i interface{}) string {
			switch lvl := strings.ToUpper(fmt.Sprintf("%s", i)); lvl {
			case "TRACE":
				return "[TRC]"
			case "DEBUG":
				return "[DBG]"
			case "INFO":
				return "[INF]"
			case "WARN":
				return "[WRN]"
			case "ERROR":
				return "[ERR]"
			default:
				return fmt.Sprintf("[%s]", lvl)
			}
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s:", i)
		},
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
