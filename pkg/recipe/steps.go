package recipe

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/w-029/DP-TemplatePattern/pkg/recipe/model"
)

const (
	boilingWaterMsg = "Boiling water"
	pouringMsg      = "Pouring into cup"
)

type step struct {
	info *model.StepInfo
	fn   func(ctx context.Context) error
}

// mainSteps returns the steps that run for every preparation, in order.
func (r *Recipe) mainSteps(bev Beverage, name string) []step {
	return []step{
		{
			info: &model.StepInfo{Type: model.FixedStepType, Name: model.BoilWaterStepName},
			fn:   func(context.Context) error { return r.boilWater() },
		},
		{
			info: &model.StepInfo{Type: model.DelegatedStepType, Name: model.BrewStepName, Beverage: name},
			fn:   func(ctx context.Context) error { return bev.Brew(ctx, r.notifier) },
		},
		{
			info: &model.StepInfo{Type: model.FixedStepType, Name: model.PourInCupStepName},
			fn:   func(context.Context) error { return r.pourInCup() },
		},
	}
}

func (r *Recipe) condimentStep(bev Beverage, name string) step {
	return step{
		info: &model.StepInfo{Type: model.OptionalStepType, Name: model.AddCondimentsStepName, Beverage: name},
		fn:   func(ctx context.Context) error { return bev.AddCondiments(ctx, r.notifier) },
	}
}

func (r *Recipe) boilWater() error {
	return r.notifier.Notify(boilingWaterMsg)
}

func (r *Recipe) pourInCup() error {
	return r.notifier.Notify(pouringMsg)
}

func (r *Recipe) runStep(ctx context.Context, prep *model.PreparationInfo, parent *model.StepInfo, stp step) error {
	for _, opt := range r.opts {
		err := opt.BeforeStep(prep, parent, stp.info)
		if err != nil {
			return errors.Wrap(err, "unable to run before step function")
		}
	}

	start := time.Now()
	err := stp.fn(ctx)
	if err != nil {
		return errors.Wrapf(err, "unable to %s", stp.info.Name)
	}
	elapsed := time.Since(start)

	for _, opt := range r.opts {
		err := opt.AfterStep(prep, parent, stp.info, elapsed)
		if err != nil {
			return errors.Wrap(err, "unable to run after step function")
		}
	}

	return nil
}

func (r *Recipe) skipStep(prep *model.PreparationInfo, parent *model.StepInfo, stp step) error {
	for _, opt := range r.opts {
		err := opt.OnStepSkipped(prep, parent, stp.info)
		if err != nil {
			return errors.Wrap(err, "unable to run skipped step function")
		}
	}

	return nil
}
