package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockResult implements Result
type mockResult struct {
	id  int
	err error
}

func (r *mockResult) GetError() error {
	return r.err
}

// mockJob implements Job
type mockJob struct {
	id        int
	duration  time.Duration
	shouldErr bool
	executed  *int32 // atomic counter
}

func (j *mockJob) Execute(ctx context.Context) Result {
	if j.executed != nil {
		atomic.AddInt32(j.executed, 1)
	}
	if j.duration > 0 {
		select {
		case <-time.After(j.duration):
		case <-ctx.Done():
			return &mockResult{id: j.id, err: ctx.Err()}
		}
	}
	if j.shouldErr {
		return &mockResult{id: j.id, err: errors.New("job error")}
	}
	return &mockResult{id: j.id}
}

func TestNewPool(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, 5, NewPool(ctx, 5).workers)
	assert.Equal(t, 1, NewPool(ctx, 0).workers)
	assert.Equal(t, 1, NewPool(ctx, -1).workers)
}

func TestPool_ExecutesAllJobs(t *testing.T) {
	var executed int32
	pool := NewPool(context.Background(), 3)
	pool.Start()

	for i := 0; i < 10; i++ {
		require.NoError(t, pool.Submit(&mockJob{id: i, executed: &executed}))
	}

	results := pool.Wait()
	assert.Len(t, results, 10)
	assert.Equal(t, int32(10), atomic.LoadInt32(&executed))
}

func TestPool_PreservesSubmissionOrder(t *testing.T) {
	pool := NewPool(context.Background(), 4)
	pool.Start()

	// earlier jobs take longer so they finish last
	for i := 0; i < 8; i++ {
		require.NoError(t, pool.Submit(&mockJob{id: i, duration: time.Duration(8-i) * 5 * time.Millisecond}))
	}

	results := pool.Wait()
	require.Len(t, results, 8)
	for i, r := range results {
		assert.Equal(t, i, r.(*mockResult).id)
	}
}

func TestPool_ManyJobsDoNotDeadlock(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	for i := 0; i < 500; i++ {
		require.NoError(t, pool.Submit(&mockJob{id: i}))
	}

	assert.Len(t, pool.Wait(), 500)
}

func TestPool_Errors(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	require.NoError(t, pool.Submit(&mockJob{id: 0}))
	require.NoError(t, pool.Submit(&mockJob{id: 1, shouldErr: true}))

	results := pool.Wait()
	require.Len(t, results, 2)
	assert.NoError(t, results[0].GetError())
	assert.Error(t, results[1].GetError())
}

func TestPool_SubmitAfterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(ctx, 1)
	pool.Start()
	cancel()

	err := pool.Submit(&mockJob{id: 0})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, pool.Wait())
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()

	require.NoError(t, pool.Submit(&mockJob{id: 0, duration: time.Second}))

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("shutdown did not stop running jobs")
	}
}
