// Package nodeexec runs the external wallet tool as a subprocess and turns
// its output into a Response.
//
// The tool writes free-form progress lines prefixed with ">>" and a single
// structured payload on the same stdout stream. The Runner separates the two,
// forwards the progress lines to the logger and hands the payload to a Decoder.
package nodeexec

// Subcommands understood by the wallet tool.
const (
	SubcommandCreate       = "create"
	SubcommandBalance      = "balance"
	SubcommandTransactions = "transactions"
	SubcommandSend         = "send"
	SubcommandUpdate       = "update"
)

// Command is the full argument vector of one tool invocation: the runtime,
// the script and the subcommand followed by its flag/value pairs.
type Command []string

// Subcommand returns the tool subcommand, or "" when the command is too short to carry one.
func (c Command) Subcommand() string {
	if len(c) < 3 {
		return ""
	}
	return c[2]
}

// Tool describes how the wallet script is launched.
type Tool struct {
	Runtime string // interpreter binary, e.g. "node"
	Script  string // path to the wallet script
}

// Command builds the invocation of subcommand with the given flag/value arguments.
// The returned slice is freshly allocated and never shared with args.
func (t Tool) Command(subcommand string, args ...string) Command {
	cmd := make(Command, 0, 3+len(args))
	cmd = append(cmd, t.Runtime, t.Script, subcommand)
	return append(cmd, args...)
}

// Response is the outcome of one invocation.
//
// Failed reports whether the tool (or the bridge itself) considers the call
// unsuccessful; Message carries the tool's message or the failure cause; Data is
// the decoded payload (map[string]any, []any, string, int64, float64, bool or nil).
type Response struct {
	Failed  bool   `json:"failed"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Failure builds a failed Response without data.
func Failure(message string) Response {
	return Response{Failed: true, Message: message}
}
