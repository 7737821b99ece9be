package dominance

import (
	"context"
	"errors"
	"sync"

	"github.com/tools4origins/swisspeak/grid"
)

func feedRows(ctx context.Context, nrows int) (<-chan int, <-chan error) {
	out := make(chan int)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for r := 0; r < nrows; r++ {
			select {
			case out <- r:
			case <-ctx.Done():
				errc <- errors.New("dominance: classification cancelled")
				return
			}
		}
	}()
	return out, errc
}

func rowWorker(ctx context.Context, g, out *grid.Grid, peak grid.Cell, border []grid.Cell, rows <-chan int) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for r := range rows {
			if err := ctx.Err(); err != nil {
				errc <- err
				return
			}
			classifyRow(g, out, r, peak, border)
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
