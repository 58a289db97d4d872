package cli

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/ksuid"
)

// generate creates count ids, splitting the work across at most workers
// goroutines. The result is in no particular order.
func generate[P ksuid.Precision](ctx context.Context, gen *ksuid.Generator[P], count, workers int) ([]ksuid.ID[P], error) {
	ids := make([]ksuid.ID[P], count)
	chunk := (count + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for lo := 0; lo < count; lo += chunk {
		hi := min(lo+chunk, count)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				id, err := gen.New()
				if err != nil {
					return err
				}
				ids[i] = id
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ids, nil
}

// parseAll decodes every argument, reporting the first invalid one.
func parseAll[P ksuid.Precision](args []string) ([]ksuid.ID[P], error) {
	ids := make([]ksuid.ID[P], len(args))
	for i, arg := range args {
		if err := ids[i].UnmarshalText([]byte(arg)); err != nil {
			return nil, errors.Join(ErrInvalidID, fmt.Errorf("argument %d %q: %w", i+1, arg, err))
		}
	}
	return ids, nil
}
