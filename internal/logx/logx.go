// Package logx is the shared diagnostic logger for the deskkit commands.
//
// Everything goes to stderr: stdout belongs to the command output (Waybar reads
// mediastatus's stdout verbatim).
package logx

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logger zerolog.Logger = zerolog.Nop()
	logMu  sync.Mutex
)

// Init installs a console logger tagged with the command name and pid.
func Init(command string, verbose bool) {
	InitWriter(os.Stderr, command, verbose)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, command string, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}

	logMu.Lock()
	logger = zerolog.New(cw).Level(level).With().
		Timestamp().
		Str("cmd", command).
		Int("pid", os.Getpid()).
		Logger()
	logMu.Unlock()
}

// Logger returns the current logger for callers that want structured fields.
func Logger() *zerolog.Logger {
	logMu.Lock()
	defer logMu.Unlock()
	l := logger
	return &l
}

func Info(msg string) {
	Logger().Info().Msg(msg)
}

func Debugf(format string, args ...any) {
	Logger().Debug().Msg(fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) {
	Logger().Warn().Msg(fmt.Sprintf(format, args...))
}

func Errorf(format string, args ...any) {
	Logger().Error().Msg(fmt.Sprintf(format, args...))
}
