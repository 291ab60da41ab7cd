package compare

import (
	"sort"
	"sync"

	"github.com/pseudomuto/unitdiff/pkg/codepath"
)

// ByNameParallel is ByName with the shared-key loop fanned out across a
// bounded pool of workers. Independent subtrees are compared concurrently;
// all branch outcomes are collected and the failure belonging to the earliest
// key in sorted order is returned, so the result is indistinguishable from
// the sequential loop. Failures found speculatively in later branches are
// discarded.
//
// workers < 2 falls back to ByName.
func ByNameParallel[A, B Named](path *codepath.Path, a []A, b []B, workers int, eq Fn[A, B]) error {
	if workers < 2 {
		return ByName(path, a, b, eq)
	}

	aIdx := indexByName(a)
	bIdx := indexByName(b)

	shared := make([]string, 0, min(len(aIdx), len(bIdx)))
	for name := range aIdx {
		if _, ok := bIdx[name]; ok {
			shared = append(shared, name)
		}
	}
	sort.Strings(shared)

	if err := fanout(shared, workers, func(name string) error {
		return eq(path.Key(name), aIdx[name], bIdx[name])
	}); err != nil {
		return err
	}

	if name, ok := firstOnly(aIdx, bIdx); ok {
		return failf(ExtraOnLeft, path, "left has key %s but right does not", name)
	}

	if name, ok := firstOnly(bIdx, aIdx); ok {
		return failf(ExtraOnRight, path, "right has key %s but left does not", name)
	}

	return nil
}

// fanout runs fn once per key on at most workers goroutines and returns the
// failure for the earliest key, preserving the deterministic first-failure
// contract of the sequential loop.
func fanout(keys []string, workers int, fn func(key string) error) error {
	if workers > len(keys) {
		workers = len(keys)
	}

	var (
		wg   sync.WaitGroup
		next = make(chan int)
		errs = make([]error, len(keys))
	)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				errs[i] = fn(keys[i])
			}
		}()
	}

	for i := range keys {
		next <- i
	}
	close(next)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
