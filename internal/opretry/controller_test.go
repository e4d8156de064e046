package opretry

import (
	"context"
	"testing"
	"time"

	"github.com/gabapcia/vitebridge/internal/nodeexec"
	nodeexectest "github.com/gabapcia/vitebridge/internal/nodeexec/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var balanceCmd = nodeexec.Command{"node", "api.js", nodeexec.SubcommandBalance, "-a", "vite_a"}

func buildBalance() nodeexec.Command {
	return balanceCmd
}

func alwaysRetriable(nodeexec.Response) Classification {
	return Retriable
}

func TestTimeout(t *testing.T) {
	assert.Equal(t, Retriable, Timeout(nodeexec.Failure("connection timeout")))
	assert.Equal(t, Retriable, Timeout(nodeexec.Failure("Request TIMEOUT after 30s")))
	assert.Equal(t, Terminal, Timeout(nodeexec.Failure("insufficient balance")))
	assert.Equal(t, Terminal, Timeout(nodeexec.Failure("")))
}

func TestNoPending(t *testing.T) {
	resp, ok := NoPending(nodeexec.Failure("No Pending transactions found"))
	assert.True(t, ok)
	assert.Equal(t, nodeexec.Response{Message: MsgNoPending}, resp)

	original := nodeexec.Failure("connection timeout")
	resp, ok = NoPending(original)
	assert.False(t, ok)
	assert.Equal(t, original, resp)
}

func TestController_WithRetry(t *testing.T) {
	t.Run("should return the first success without consuming the budget", func(t *testing.T) {
		runner := nodeexectest.NewRunner(t)
		ok := nodeexec.Response{Message: "balance success", Data: map[string]any{}}
		runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(ok).Once()

		result := New(runner).WithRetry(t.Context(), buildBalance, 3, Timeout)

		assert.Equal(t, ok, result.Response)
		assert.Equal(t, StatusFinished, result.Status)
		assert.Equal(t, 3, result.Remaining)
		assert.False(t, result.Inferred)
	})

	t.Run("should invoke the command N+1 times before giving up", func(t *testing.T) {
		for _, n := range []int{0, 1, 3, 5} {
			runner := nodeexectest.NewRunner(t)
			runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(nodeexec.Failure("boom")).Times(n + 1)

			result := New(runner).WithRetry(t.Context(), buildBalance, n, alwaysRetriable)

			assert.Equal(t, nodeexec.Failure(MsgExhausted), result.Response, "budget %d", n)
			assert.Equal(t, StatusFailed, result.Status)
			assert.Equal(t, 0, result.Remaining)
		}
	})

	t.Run("should return a terminal failure after a single invocation", func(t *testing.T) {
		runner := nodeexectest.NewRunner(t)
		failure := nodeexec.Failure("insufficient balance")
		runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(failure).Once()

		result := New(runner).WithRetry(t.Context(), buildBalance, 3, Timeout)

		assert.Equal(t, failure, result.Response)
		assert.Equal(t, StatusFailed, result.Status)
		assert.Equal(t, 3, result.Remaining)
	})

	t.Run("should recover after transient failures", func(t *testing.T) {
		runner := nodeexectest.NewRunner(t)
		ok := nodeexec.Response{Message: "balance success"}
		runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(nodeexec.Failure("timeout")).Twice()
		runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(ok).Once()

		result := New(runner).WithRetry(t.Context(), buildBalance, 3, Timeout)

		assert.Equal(t, ok, result.Response)
		assert.Equal(t, StatusFinished, result.Status)
		assert.Equal(t, 1, result.Remaining)
	})

	t.Run("should stop on a terminal failure after transient ones", func(t *testing.T) {
		runner := nodeexectest.NewRunner(t)
		runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(nodeexec.Failure("timeout")).Once()
		runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(nodeexec.Failure("bad address")).Once()

		result := New(runner).WithRetry(t.Context(), buildBalance, 3, Timeout)

		assert.Equal(t, nodeexec.Failure("bad address"), result.Response)
		assert.Equal(t, StatusFailed, result.Status)
		assert.Equal(t, 2, result.Remaining)
	})

	t.Run("should treat a nil classifier as terminal", func(t *testing.T) {
		runner := nodeexectest.NewRunner(t)
		runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(nodeexec.Failure("timeout")).Once()

		result := New(runner).WithRetry(t.Context(), buildBalance, 3, nil)

		assert.Equal(t, StatusFailed, result.Status)
	})

	t.Run("should resolve no pending failures regardless of the budget", func(t *testing.T) {
		for _, budget := range []int{0, 3} {
			runner := nodeexectest.NewRunner(t)
			runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(nodeexec.Failure("no PENDING transactions")).Once()

			result := New(runner).WithRetry(t.Context(), buildBalance, budget, alwaysRetriable, WithResolver(NoPending))

			assert.False(t, result.Failed)
			assert.Equal(t, MsgNoPending, result.Message)
			assert.Equal(t, StatusFinished, result.Status)
			assert.Equal(t, budget, result.Remaining)
		}
	})

	t.Run("should rebuild the command for every attempt", func(t *testing.T) {
		runner := nodeexectest.NewRunner(t)
		runner.EXPECT().Execute(mock.Anything, mock.Anything).Return(nodeexec.Failure("timeout")).Times(3)

		builds := 0
		build := func() nodeexec.Command {
			builds++
			return balanceCmd
		}

		New(runner).WithRetry(t.Context(), build, 2, Timeout)

		assert.Equal(t, 3, builds)
	})

	t.Run("should not resubmit once the reconciler settles", func(t *testing.T) {
		runner := nodeexectest.NewRunner(t)
		timeout := nodeexec.Failure("timeout")
		runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(timeout).Once()

		var seen []nodeexec.Response
		reconcile := func(_ context.Context, last nodeexec.Response) (Decision, nodeexec.Response) {
			seen = append(seen, last)
			return Settle, nodeexec.Response{}
		}

		result := New(runner).WithRetry(t.Context(), buildBalance, 3, Timeout, WithReconciler(reconcile))

		assert.Equal(t, timeout, result.Response)
		assert.True(t, result.Inferred)
		assert.Equal(t, StatusFinished, result.Status)
		assert.Equal(t, 2, result.Remaining)
		assert.Equal(t, []nodeexec.Response{timeout}, seen)
	})

	t.Run("should return the reconciler response on abort", func(t *testing.T) {
		runner := nodeexectest.NewRunner(t)
		runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(nodeexec.Failure("timeout")).Once()

		unavailable := nodeexec.Failure("state unavailable")
		reconcile := func(context.Context, nodeexec.Response) (Decision, nodeexec.Response) {
			return Abort, unavailable
		}

		result := New(runner).WithRetry(t.Context(), buildBalance, 3, Timeout, WithReconciler(reconcile))

		assert.Equal(t, unavailable, result.Response)
		assert.Equal(t, StatusFailed, result.Status)
		assert.False(t, result.Inferred)
	})

	t.Run("should resubmit while the reconciler asks for it", func(t *testing.T) {
		runner := nodeexectest.NewRunner(t)
		runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(nodeexec.Failure("timeout")).Times(3)

		calls := 0
		reconcile := func(context.Context, nodeexec.Response) (Decision, nodeexec.Response) {
			calls++
			return Resubmit, nodeexec.Response{}
		}

		result := New(runner).WithRetry(t.Context(), buildBalance, 2, Timeout, WithReconciler(reconcile))

		assert.Equal(t, nodeexec.Failure(MsgExhausted), result.Response)
		assert.Equal(t, 2, calls)
	})

	t.Run("should wait the fixed delay between attempts", func(t *testing.T) {
		runner := nodeexectest.NewRunner(t)
		runner.EXPECT().Execute(mock.Anything, balanceCmd).Return(nodeexec.Failure("timeout")).Times(3)

		start := time.Now()
		New(runner).WithRetry(t.Context(), buildBalance, 2, Timeout, WithFixedDelay(20*time.Millisecond))

		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})

	t.Run("should fail with the context error when canceled", func(t *testing.T) {
		runner := nodeexectest.NewRunner(t)
		ctx, cancel := context.WithCancel(t.Context())
		runner.EXPECT().Execute(mock.Anything, balanceCmd).
			Run(func(context.Context, nodeexec.Command) { cancel() }).
			Return(nodeexec.Failure("timeout")).Once()

		result := New(runner, WithDelay(time.Second)).WithRetry(ctx, buildBalance, 3, Timeout)

		assert.True(t, result.Failed)
		assert.Equal(t, context.Canceled.Error(), result.Message)
		assert.Equal(t, StatusFailed, result.Status)
	})
}

func TestNew(t *testing.T) {
	runner := nodeexectest.NewRunner(t)

	c := New(runner, WithDelay(time.Second), WithMaxDelay(2*time.Second))

	assert.Equal(t, time.Second, c.delay)
	assert.Equal(t, 2*time.Second, c.maxDelay)
	assert.Same(t, runner, c.runner)
}
