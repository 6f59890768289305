// query.go — Run playerctl with a deadline and classify the outcome.
package player

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/xob0t/deskkit/internal/logx"
)

const (
	// DefaultCommand is the media-control binary looked up on PATH.
	DefaultCommand = "playerctl"
	// DefaultTimeout bounds a single playerctl call.
	DefaultTimeout = 5 * time.Second

	// FormatTemplate makes playerctl print a ready-made Status object.
	FormatTemplate = `{"text": "{{artist}} - {{title}}", "tooltip": "{{playerName}}: {{artist}} - {{title}}", "alt": "{{status}}", "class": "{{status}}"}`

	// How long to wait for pipes held open by grandchildren after a kill.
	waitDelay = 250 * time.Millisecond
)

var (
	// ErrNoMedia means playerctl ran but reported no player or printed nothing.
	ErrNoMedia = errors.New("no media playing")
	// ErrTimeout means playerctl did not answer within the deadline.
	ErrTimeout = errors.New("playerctl timed out")
)

// Config tunes a query. The zero value reproduces the stock behavior.
type Config struct {
	Command string        // default: DefaultCommand
	Player  string        // passed as --player=<name> when set
	Timeout time.Duration // default: DefaultTimeout
	MaxLen  int           // default: MaxTextLen
}

func (c Config) withDefaults() Config {
	if c.Command == "" {
		c.Command = DefaultCommand
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxLen <= 0 {
		c.MaxLen = MaxTextLen
	}
	return c
}

// Args is the playerctl argument list for cfg.
func (c Config) Args() []string {
	var args []string
	if c.Player != "" {
		args = append(args, "--player="+c.Player)
	}
	return append(args, "metadata", "--format", FormatTemplate)
}

// Query always returns a displayable status. Failures map to NoMedia or
// Unavailable and are logged at debug level.
func Query(ctx context.Context, cfg Config) Status {
	st, err := Fetch(ctx, cfg)
	if err == nil {
		return st
	}

	logx.Debugf("player query: %v", err)
	if errors.Is(err, ErrNoMedia) {
		return NoMedia
	}
	return Unavailable
}

// Fetch runs playerctl once. Errors wrap ErrNoMedia when playerctl exited
// non-zero or printed nothing; anything else (missing binary, ErrTimeout,
// bad JSON) means the player could not be asked.
func Fetch(ctx context.Context, cfg Config) (Status, error) {
	cfg = cfg.withDefaults()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command, cfg.Args()...)
	cmd.WaitDelay = waitDelay

	out, err := cmd.Output()
	if err != nil {
		return Status{}, classify(ctx, cfg, err)
	}

	out = bytes.TrimSpace(out)
	if len(out) == 0 {
		return Status{}, fmt.Errorf("%s: empty output: %w", cfg.Command, ErrNoMedia)
	}

	var st Status
	if err := json.Unmarshal(out, &st); err != nil {
		return Status{}, fmt.Errorf("%s: parse metadata: %w", cfg.Command, err)
	}
	st.Text = Truncate(st.Text, cfg.MaxLen)
	return st, nil
}

func classify(ctx context.Context, cfg Config, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrTimeout, cfg.Timeout)
		}
		return fmt.Errorf("run %s: %w", cfg.Command, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := bytes.TrimSpace(exitErr.Stderr)
		return fmt.Errorf("%s exited %d (%s): %w", cfg.Command, exitErr.ExitCode(), stderr, ErrNoMedia)
	}

	return fmt.Errorf("run %s: %w", cfg.Command, err)
}
