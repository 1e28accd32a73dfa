package producer

import (
	"sync"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/batch"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/column"
)

// Prefetcher assembles a batch of pages concurrently across a fixed pool
// of goroutines, returning their encoded chunks in page order. It exists
// so a response with many pages doesn't pay for record-batch assembly
// serially on the pull path.
//
// Adapted from the teacher's generic task worker pool
// (hierachain-engine/core/worker_pool.go): this version is specialized to
// one task shape (assemble a page) instead of a generic ProcessFunc, and
// collects results by index rather than by matching task IDs.
type Prefetcher struct {
	workers  int
	recycler *ipcstream.SinkRecycler
}

// NewPrefetcher creates a Prefetcher with the given worker count (clamped
// to at least 1) drawing buffers from recycler.
func NewPrefetcher(workers int, recycler *ipcstream.SinkRecycler) *Prefetcher {
	if workers <= 0 {
		workers = 1
	}
	return &Prefetcher{workers: workers, recycler: recycler}
}

type pageTask struct {
	index int
	page  *column.Page
}

type pageResult struct {
	index int
	chunk *ipcstream.Chunk
	err   error
}

// EncodeAll assembles every page and returns their chunks in the same
// order as pages. If any page fails to assemble, all already-produced
// chunks are released and the first error encountered is returned.
func (p *Prefetcher) EncodeAll(pages []*column.Page) ([]*ipcstream.Chunk, error) {
	if len(pages) == 0 {
		return nil, nil
	}

	tasks := make(chan pageTask, len(pages))
	results := make(chan pageResult, len(pages))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				buf := p.recycler.Get()
				if _, err := batch.Assemble(t.page, buf); err != nil {
					p.recycler.Put(buf)
					results <- pageResult{index: t.index, err: err}
					continue
				}
				results <- pageResult{index: t.index, chunk: p.recycler.Wrap(buf)}
			}
		}()
	}

	for i, pg := range pages {
		tasks <- pageTask{index: i, page: pg}
	}
	close(tasks)

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]*ipcstream.Chunk, len(pages))
	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		ordered[r.index] = r.chunk
	}

	if firstErr != nil {
		for _, c := range ordered {
			if c != nil {
				c.Release()
			}
		}
		return nil, firstErr
	}
	return ordered, nil
}
