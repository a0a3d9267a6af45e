package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/scheduler"
)

func quickOpts() scheduler.Options {
	opts := scheduler.DefaultOptions()
	opts.Workers = 2
	opts.SmallThreshold = 10
	opts.DefaultTimeout = 200 * time.Millisecond
	opts.GracePeriod = 20 * time.Millisecond
	return opts
}

func TestSubmitCompletesSuccessfully(t *testing.T) {
	p := scheduler.NewPool(quickOpts())
	defer p.Close()

	var progressed []float64
	h, err := p.Submit(context.Background(), 1000, func(ctx context.Context, report scheduler.ProgressFunc) (any, error) {
		report(0)
		report(1)
		return 42, nil
	}, func(f float64) { progressed = append(progressed, f) })
	require.NoError(t, err)

	res, err := h.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, scheduler.StatusCompleted, res.Status)
	require.Equal(t, 42, res.Value)
}

func TestSubmitRunsInlineBelowSmallThreshold(t *testing.T) {
	p := scheduler.NewPool(quickOpts())
	defer p.Close()

	ran := false
	h, err := p.Submit(context.Background(), 5, func(ctx context.Context, report scheduler.ProgressFunc) (any, error) {
		ran = true
		return nil, nil
	}, nil)
	require.NoError(t, err)
	require.True(t, ran, "inline submission should execute before Submit returns")

	res, err := h.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, scheduler.StatusCompleted, res.Status)
}

// TestTimeoutSiblingUnaffected mirrors the cancellation scenario: a slow
// task given a short timeout finishes TimedOut while a fast sibling
// submitted alongside it completes normally.
func TestTimeoutSiblingUnaffected(t *testing.T) {
	p := scheduler.NewPool(quickOpts())
	defer p.Close()

	slowCtx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	slow, err := p.Submit(slowCtx, 5000, func(ctx context.Context, report scheduler.ProgressFunc) (any, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
			return "too slow", nil
		}
	}, nil)
	require.NoError(t, err)

	fast, err := p.Submit(context.Background(), 5000, func(ctx context.Context, report scheduler.ProgressFunc) (any, error) {
		return map[string]int{"A": 1, "B": 2}, nil
	}, nil)
	require.NoError(t, err)

	slowRes, err := slow.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, scheduler.StatusTimedOut, slowRes.Status)
	require.ErrorIs(t, slowRes.Err, scheduler.ErrTimedOut)

	fastRes, err := fast.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, scheduler.StatusCompleted, fastRes.Status)
	require.Equal(t, map[string]int{"A": 1, "B": 2}, fastRes.Value)
}

func TestWorkerCrashRecoveredAsFailure(t *testing.T) {
	p := scheduler.NewPool(quickOpts())
	defer p.Close()

	h, err := p.Submit(context.Background(), 1000, func(ctx context.Context, report scheduler.ProgressFunc) (any, error) {
		panic("kernel exploded")
	}, nil)
	require.NoError(t, err)

	res, err := h.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, scheduler.StatusFailed, res.Status)
	var crash *scheduler.WorkerCrashError
	require.True(t, errors.As(res.Err, &crash))
}

func TestPoolExhaustedAfterRepeatedTimeouts(t *testing.T) {
	opts := quickOpts()
	opts.MaxFailuresPerWindow = 2
	opts.FailureWindow = time.Minute
	p := scheduler.NewPool(opts)
	defer p.Close()

	stuckKernel := func(ctx context.Context, report scheduler.ProgressFunc) (any, error) {
		<-ctx.Done()
		<-time.After(time.Hour) // outlives the grace period, forcing abandonment
		return nil, nil
	}

	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		h, err := p.Submit(ctx, 1000, stuckKernel, nil)
		cancel()
		if errors.Is(err, scheduler.ErrPoolExhausted) {
			break
		}
		require.NoError(t, err)
		_, _ = h.Wait(context.Background())
	}

	require.True(t, p.Degraded())

	_, err := p.Submit(context.Background(), 1000, func(ctx context.Context, report scheduler.ProgressFunc) (any, error) {
		return nil, nil
	}, nil)
	require.ErrorIs(t, err, scheduler.ErrPoolExhausted)

	p.Reset()
	require.False(t, p.Degraded())
}

func TestHandleWaitRespectsCallerContext(t *testing.T) {
	p := scheduler.NewPool(quickOpts())
	defer p.Close()

	h, err := p.Submit(context.Background(), 1000, func(ctx context.Context, report scheduler.ProgressFunc) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}, nil)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	_, err = h.Wait(waitCtx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
