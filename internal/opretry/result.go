// Package opretry wraps wallet tool invocations with bounded retry.
//
// It tells transient failures (the tool reporting a timeout) apart from
// terminal ones, lets an operation reinterpret a failure as success, and lets
// mutating operations reconcile remote state before a command is submitted
// again. Every call returns its own Result; nothing is shared between calls.
package opretry

import (
	"strings"

	"github.com/gabapcia/vitebridge/internal/nodeexec"
)

// Status is the lifecycle state of one operation call.
type Status string

const (
	StatusRunning  Status = "running"
	StatusFinished Status = "finished"
	StatusFailed   Status = "failed"
)

// Messages of the responses synthesized by the controller.
const (
	MsgExhausted  = "too many fail attempts"
	MsgNoPending  = "No pending transactions"
	noPendingHint = "no pending"
	timeoutHint   = "timeout"
)

// Result is the outcome of one operation call.
type Result struct {
	nodeexec.Response

	// Status is StatusFinished on success and StatusFailed on any terminal outcome.
	Status Status `json:"status"`

	// Remaining is the attempt budget left when the call returned.
	Remaining int `json:"remaining_attempts"`

	// Inferred is set when a failed submission was found to have taken effect
	// remotely and was therefore not submitted again.
	Inferred bool `json:"inferred,omitempty"`

	// Err is set when the call failed before the tool could be invoked,
	// e.g. on invalid parameters. Response.Message carries the same text.
	Err error `json:"-"`
}

// Rejected builds the Result of a call refused before any invocation.
func Rejected(err error) Result {
	return Result{
		Response: nodeexec.Failure(err.Error()),
		Status:   StatusFailed,
		Err:      err,
	}
}

// Classification tells the controller what to do with a failed response.
type Classification int

const (
	Terminal Classification = iota
	Retriable
)

func (c Classification) String() string {
	if c == Retriable {
		return "retriable"
	}
	return "terminal"
}

// Classifier decides whether a failed response is worth another attempt.
type Classifier func(resp nodeexec.Response) Classification

// Timeout is the canonical Classifier: a failure is retriable iff its
// message mentions a timeout, in any case.
func Timeout(resp nodeexec.Response) Classification {
	if strings.Contains(strings.ToLower(resp.Message), timeoutHint) {
		return Retriable
	}
	return Terminal
}

// Never classifies every failure as terminal.
func Never(nodeexec.Response) Classification {
	return Terminal
}

// Resolver may turn a failed response into a final successful one.
// It returns false to leave the response untouched.
type Resolver func(resp nodeexec.Response) (nodeexec.Response, bool)

// NoPending resolves the tool's "no pending" failure of the update command
// into a successful no-op.
func NoPending(resp nodeexec.Response) (nodeexec.Response, bool) {
	if !strings.Contains(strings.ToLower(resp.Message), noPendingHint) {
		return resp, false
	}
	return nodeexec.Response{Message: MsgNoPending}, true
}
