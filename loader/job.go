package loader

import (
	"context"

	"github.com/google/uuid"
)

// Job is a LoadFile running on its own goroutine.
//
// Progress fractions are delivered on a buffered channel without blocking
// the worker; a slow reader may miss intermediate values. The channel is
// closed when the job ends.
type Job struct {
	ID   string
	Path string

	cancel   context.CancelFunc
	progress chan float64
	done     chan struct{}

	sum Summary
	err error
}

// Start launches LoadFile(path) into sink in the background. The sink must
// tolerate calls from another goroutine; network.Network does.
func Start(ctx context.Context, path string, sink Sink, opts ...Option) *Job {
	ctx, cancel := context.WithCancel(ctx)
	j := &Job{
		ID:       uuid.New().String(),
		Path:     path,
		cancel:   cancel,
		progress: make(chan float64, 16),
		done:     make(chan struct{}),
	}

	user, _ := buildOptions(opts)
	forward := WithOnProgress(func(f float64, lines int) {
		user.OnProgress(f, lines)
		select {
		case j.progress <- f:
		default:
		}
	})

	go func() {
		defer close(j.done)
		defer close(j.progress)
		defer cancel()
		j.sum, j.err = LoadFile(ctx, path, sink, append(opts[:len(opts):len(opts)], forward)...)
	}()

	return j
}

// Progress returns the channel of progress fractions.
func (j *Job) Progress() <-chan float64 { return j.progress }

// Done is closed when the job has finished.
func (j *Job) Done() <-chan struct{} { return j.done }

// Wait blocks until the job finishes and returns its outcome.
func (j *Job) Wait() (Summary, error) {
	<-j.done
	return j.sum, j.err
}

// Cancel requests termination; the worker stops before its next line.
// Safe to call more than once.
func (j *Job) Cancel() {
	j.cancel()
}
