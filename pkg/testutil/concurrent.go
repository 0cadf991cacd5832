package testutil

import (
	"errors"
	"sync"

	"sumbandila/pkg/platform/sentinel"
)

// RaceResult holds the error returned by each racer, indexed by racer.
type RaceResult struct {
	Errs []error
}

// Successes counts racers that returned nil.
func (r *RaceResult) Successes() int {
	return r.count(func(err error) bool { return err == nil })
}

// Conflicts counts racers rejected with sentinel.ErrAlreadyExists.
func (r *RaceResult) Conflicts() int {
	return r.count(func(err error) bool { return errors.Is(err, sentinel.ErrAlreadyExists) })
}

// Unexpected returns every error that is not a conflict.
func (r *RaceResult) Unexpected() []error {
	var out []error
	for _, err := range r.Errs {
		if err != nil && !errors.Is(err, sentinel.ErrAlreadyExists) {
			out = append(out, err)
		}
	}
	return out
}

func (r *RaceResult) count(match func(error) bool) int {
	n := 0
	for _, err := range r.Errs {
		if match(err) {
			n++
		}
	}
	return n
}

// RunConcurrent releases n goroutines at once from a shared gate and
// collects what each returned.
func RunConcurrent(n int, fn func(idx int) error) *RaceResult {
	res := &RaceResult{Errs: make([]error, n)}
	gate := make(chan struct{})
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-gate
			res.Errs[i] = fn(i)
		}()
	}
	close(gate)
	wg.Wait()
	return res
}
