// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pdiddy/doi-navigator/pkg/types"
)

// Progress observes batch completion. It is called once per finished
// identifier, possibly from multiple goroutines, with the running count
// of completed resolutions and the batch total. It must not block.
type Progress func(done, total int)

// ResolveBatch resolves a de-duplicated identifier list with a bounded
// worker pool of min(maxWorkers, len(ids)) goroutines and returns one
// record per identifier in input order, regardless of completion order.
//
// One identifier's failure never affects another: the resolver converts
// every failure into an error record, so the output always has len(ids)
// rows. Identifiers are never retried at this layer; transient network
// retries live in the HTTP client underneath the resolver.
func ResolveBatch(ctx context.Context, r *Resolver, ids []string, maxWorkers int, progress Progress) []types.MetadataRecord {
	records := make([]types.MetadataRecord, len(ids))
	if len(ids) == 0 {
		return records
	}

	workers := maxWorkers
	if workers <= 0 {
		workers = r.MaxWorkers()
	}
	if workers > len(ids) {
		workers = len(ids)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	var done int32
	total := len(ids)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Each worker owns its slot, so completion order
				// cannot disturb output order.
				records[i] = r.Resolve(ctx, ids[i])
				if progress != nil {
					progress(int(atomic.AddInt32(&done, 1)), total)
				}
			}
		}()
	}

	for i := range ids {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return records
}
