package various

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForEach runs fn for every index in [0,n). In parallel mode the index range
// is split into contiguous chunks that are processed by a group of workers;
// fn must only write data owned by its index. Sequential mode runs the
// identical decomposition on the calling goroutine, which is useful for
// debugging and for verifying that results do not depend on scheduling.
func ForEach(parallel bool, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if !parallel {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > n {
		numWorkers = n
	}
	chunkSize := (n / numWorkers) + 1

	var g errgroup.Group
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		s, e := start, end
		g.Go(func() error {
			for i := s; i < e; i++ {
				fn(i)
			}
			return nil
		})
	}

	// The workers never return errors.
	_ = g.Wait()
}
