package recipe

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PrepareAll prepares every beverage with the recipe.
// With concurrent lower or equal to 1 the beverages are prepared one after the other, in order.
// Otherwise up to concurrent preparations run at the same time, and no new preparation starts
// once one of them failed. The first error is returned.
func (r *Recipe) PrepareAll(ctx context.Context, concurrent int, bevs ...Beverage) error {
	if concurrent <= 1 {
		return r.sequentialPrepareAll(ctx, bevs)
	}

	return r.concurrentPrepareAll(ctx, concurrent, bevs)
}

func (r *Recipe) sequentialPrepareAll(ctx context.Context, bevs []Beverage) error {
	for _, bev := range bevs {
		err := r.Prepare(ctx, bev)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Recipe) concurrentPrepareAll(ctx context.Context, concurrent int, bevs []Beverage) error {
	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(concurrent)

	for _, bev := range bevs {
		localBev := bev
		errGrp.Go(func() error {
			// a failed preparation cancels dCtx, the remaining ones are not started
			if err := dCtx.Err(); err != nil {
				return err
			}

			return r.Prepare(dCtx, localBev)
		})
	}

	return errGrp.Wait()
}
