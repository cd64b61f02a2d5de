package recipe

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/w-029/DP-TemplatePattern/pkg/recipe/model"
)

// Recipe is the fixed preparation algorithm shared by every beverage.
type Recipe struct {
	notifier Notifier
	opts     []model.RecipeOption
}

// New creates a new recipe writing its notifications to notifier.
func New(notifier Notifier, opts ...model.RecipeOption) (*Recipe, error) {
	if notifier == nil {
		return nil, ErrNotifierMustBeSet
	}

	rcp := &Recipe{
		notifier: notifier,
		opts:     opts,
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply recipe option")
		}
	}

	return rcp, nil
}

// Prepare runs the recipe for bev: boil water, brew, pour into the cup and,
// if the beverage hook allows it, add condiments.
// It stops at the first failing step and returns its error.
func (r *Recipe) Prepare(ctx context.Context, bev Beverage) error {
	if bev == nil {
		return ErrBeverageMustBeSet
	}

	prep := &model.PreparationInfo{
		ID:        uuid.NewString(),
		Beverage:  BeverageName(bev),
		StartTime: time.Now(),
	}

	parent := model.StartStep
	for _, stp := range r.mainSteps(bev, prep.Beverage) {
		err := r.runStep(ctx, prep, parent, stp)
		if err != nil {
			return err
		}
		parent = stp.info
	}

	condiments := r.condimentStep(bev, prep.Beverage)
	if WantsCondiments(bev) {
		err := r.runStep(ctx, prep, parent, condiments)
		if err != nil {
			return err
		}
		parent = condiments.info
	} else {
		err := r.skipStep(prep, parent, condiments)
		if err != nil {
			return err
		}
	}

	return r.finishPreparation(prep, parent)
}

// Finish runs the Finish function of every recipe option.
func (r *Recipe) Finish() error {
	for _, opt := range r.opts {
		err := opt.Finish()
		if err != nil {
			return errors.Wrap(err, "unable to finish recipe option")
		}
	}

	return nil
}

func (r *Recipe) finishPreparation(prep *model.PreparationInfo, lastStep *model.StepInfo) error {
	total := time.Since(prep.StartTime)
	for _, opt := range r.opts {
		err := opt.AfterPreparation(prep, lastStep, total)
		if err != nil {
			return errors.Wrap(err, "unable to run after preparation function")
		}
	}

	return nil
}
