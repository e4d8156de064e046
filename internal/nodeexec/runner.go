package nodeexec

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/gabapcia/vitebridge/internal/pkg/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	// logMarker prefixes the progress lines printed by the tool.
	logMarker = ">>"

	// noiseMarker prefixes continuation lines that carry neither logs nor payload.
	noiseMarker = " >>"

	// logTag replaces logMarker in forwarded lines to attribute them to the tool.
	logTag = "node.js >>"

	meterName = "github.com/gabapcia/vitebridge/internal/nodeexec"

	// stderrLimit bounds how much of the tool's stderr is kept per invocation.
	stderrLimit = 4 << 10
)

// Runner executes one tool invocation and reports its outcome.
//
// Execute never returns a Go error: spawn failures, non-zero exits and
// undecodable payloads all come back as a failed Response. It does not retry.
type Runner interface {
	Execute(ctx context.Context, cmd Command) Response
}

type lineKind int

const (
	lineSkip lineKind = iota
	lineLog
	linePayload
)

// runner is the os/exec backed Runner.
type runner struct {
	decoder     Decoder
	forwardLogs bool

	mu      sync.Mutex
	lastLog string
	emit    func(ctx context.Context, msg string, keysAndValues ...any)
	warn    func(ctx context.Context, msg string, keysAndValues ...any)

	invocations metric.Int64Counter
}

// Compile-time assertion that runner implements Runner.
var _ Runner = (*runner)(nil)

type config struct {
	decoder     Decoder
	forwardLogs bool
}

// Option configures a Runner.
type Option func(*config)

// WithDecoder replaces the payload decoder. Default: NewEnvelopeDecoder().
func WithDecoder(d Decoder) Option {
	return func(c *config) {
		c.decoder = d
	}
}

// WithForwardLogs toggles forwarding of the tool's ">>" lines to the logger. Default: true.
func WithForwardLogs(enabled bool) Option {
	return func(c *config) {
		c.forwardLogs = enabled
	}
}

// NewRunner creates a Runner that launches commands with os/exec.
func NewRunner(opts ...Option) *runner {
	cfg := config{
		decoder:     NewEnvelopeDecoder(),
		forwardLogs: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var counter metric.Int64Counter = noop.Int64Counter{}
	if c, err := otel.Meter(meterName).Int64Counter(
		"vitebridge.tool.invocations",
		metric.WithDescription("Number of wallet tool invocations by subcommand and outcome."),
	); err == nil {
		counter = c
	}

	return &runner{
		decoder:     cfg.decoder,
		forwardLogs: cfg.forwardLogs,
		emit:        logger.Info,
		warn:        logger.Warn,
		invocations: counter,
	}
}

// classifyLine decides what a raw stdout line (without its line terminator) is.
// For log lines the returned text carries the attribution tag.
func classifyLine(line string) (lineKind, string) {
	trimmed := strings.TrimSpace(line)

	switch {
	case strings.HasPrefix(trimmed, logMarker):
		return lineLog, logTag + strings.TrimPrefix(trimmed, logMarker)
	case strings.HasPrefix(line, noiseMarker):
		return lineSkip, ""
	case line == "":
		return lineSkip, ""
	default:
		return linePayload, line
	}
}

// forward logs a tool line unless forwarding is disabled or it repeats the
// previous log line.
func (r *runner) forward(ctx context.Context, invocationID, subcommand, line string) {
	r.mu.Lock()
	repeated := line == r.lastLog
	r.lastLog = line
	r.mu.Unlock()

	if r.forwardLogs && !repeated {
		r.emit(ctx, line,
			"invocation.id", invocationID,
			"invocation.command", subcommand,
		)
	}
}

// collect drains out until EOF, forwarding log lines and returning the
// payload fragments in arrival order with line terminators removed.
func (r *runner) collect(ctx context.Context, invocationID, subcommand string, out io.Reader) ([]string, error) {
	var (
		fragments []string
		reader    = bufio.NewReader(out)
	)

	for {
		raw, err := reader.ReadString('\n')
		if raw != "" {
			line := strings.TrimRight(raw, "\r\n")

			switch kind, text := classifyLine(line); kind {
			case lineLog:
				r.forward(ctx, invocationID, subcommand, text)
			case linePayload:
				fragments = append(fragments, text)
			}
		}

		if errors.Is(err, io.EOF) {
			return fragments, nil
		}
		if err != nil {
			return fragments, err
		}
	}
}

// decode joins the fragments and runs the decoder, converting a decode error
// into a failed Response.
func (r *runner) decode(fragments []string) Response {
	resp, err := r.decoder.Decode(strings.Join(fragments, ""))
	if err != nil {
		return Failure(fmt.Sprintf("decode payload: %s", err))
	}

	return resp
}

// Execute launches cmd, waits for it to exit and decodes its payload.
//
// The command arguments are never logged since they may carry a seed phrase;
// only the subcommand and a per-invocation id are.
func (r *runner) Execute(ctx context.Context, cmd Command) Response {
	var (
		invocationID = uuid.Must(uuid.NewV7()).String()
		subcommand   = cmd.Subcommand()
	)

	resp := r.execute(ctx, invocationID, cmd)

	outcome := "ok"
	if resp.Failed {
		outcome = "failed"
	}
	r.invocations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("command", subcommand),
		attribute.String("outcome", outcome),
	))

	logger.Debug(ctx, "wallet tool invocation finished",
		"invocation.id", invocationID,
		"invocation.command", subcommand,
		"response.failed", resp.Failed,
		"response.message", resp.Message,
	)

	return resp
}

func (r *runner) execute(ctx context.Context, invocationID string, cmd Command) Response {
	if len(cmd) == 0 {
		return Failure("empty command")
	}

	stderr := newTailBuffer(stderrLimit)

	proc := exec.CommandContext(ctx, cmd[0], cmd[1:]...)
	proc.Stderr = stderr

	stdout, err := proc.StdoutPipe()
	if err != nil {
		return Failure(err.Error())
	}

	if err := proc.Start(); err != nil {
		return Failure(err.Error())
	}

	fragments, readErr := r.collect(ctx, invocationID, cmd.Subcommand(), stdout)

	// Wait must follow the full drain of stdout; it closes the pipe.
	if err := proc.Wait(); err != nil {
		if tail := stderr.String(); tail != "" {
			r.warn(ctx, "wallet tool failed",
				"invocation.id", invocationID,
				"invocation.command", cmd.Subcommand(),
				"stderr", tail,
			)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
			return Failure(fmt.Sprintf("process exited with code %d", exitErr.ExitCode()))
		}
		return Failure(err.Error())
	}

	if readErr != nil {
		return Failure(fmt.Sprintf("read output: %s", readErr))
	}

	return r.decode(fragments)
}
