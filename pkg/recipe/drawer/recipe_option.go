package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/w-029/DP-TemplatePattern/pkg/recipe/measure"
	"github.com/w-029/DP-TemplatePattern/pkg/recipe/model"
)

type recipeDrawer struct {
	Drawer
	m         measure.Measure
	startTime time.Time
}

func (rd *recipeDrawer) New() error {
	err := rd.AddStep(model.StartStep)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = rd.AddStep(model.EndStep)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (rd *recipeDrawer) BeforeStep(_ *model.PreparationInfo, parentStep, step *model.StepInfo) error {
	err := rd.AddStep(step)
	if err != nil {
		return err
	}
	err = rd.AddLink(parentStep.ID(), step.ID())
	if err != nil {
		return err
	}

	return nil
}

func (rd *recipeDrawer) AfterStep(*model.PreparationInfo, *model.StepInfo, *model.StepInfo, time.Duration) error {
	return nil
}

func (rd *recipeDrawer) OnStepSkipped(_ *model.PreparationInfo, parentStep, step *model.StepInfo) error {
	err := rd.AddStep(step)
	if err != nil {
		return err
	}

	return rd.AddSkippedLink(parentStep.ID(), step.ID())
}

func (rd *recipeDrawer) AfterPreparation(_ *model.PreparationInfo, lastStep *model.StepInfo, _ time.Duration) error {
	return rd.AddLink(lastStep.ID(), model.EndStep.ID())
}

func (rd *recipeDrawer) Finish() error {
	if rd.m != nil {
		err := rd.SetTotalTime(model.EndStep.ID(), rd.startTime)
		if err != nil {
			return errors.Wrap(err, "unable to set total time")
		}
		err = rd.AddMeasure(rd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err := rd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw recipe")
	}

	return nil
}

// RecipeDrawer returns a recipe option drawing every executed step with drawer.
// When msr is not nil, the step timings are added to the drawing.
func RecipeDrawer(drawer Drawer, msr measure.Measure) model.RecipeOption {
	return &recipeDrawer{drawer, msr, time.Now()}
}
