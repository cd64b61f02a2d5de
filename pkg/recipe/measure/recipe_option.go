package measure

import (
	"time"

	"github.com/w-029/DP-TemplatePattern/pkg/recipe/model"
)

type recipeMeasure struct {
	Measure
}

func (rm *recipeMeasure) New() error {
	rm.AddMetric(model.EndStep.ID())

	return nil
}

func (rm *recipeMeasure) BeforeStep(_ *model.PreparationInfo, _, step *model.StepInfo) error {
	rm.AddMetric(step.ID())

	return nil
}

func (rm *recipeMeasure) AfterStep(_ *model.PreparationInfo, _, step *model.StepInfo, elapsed time.Duration) error {
	rm.AddMetric(step.ID()).AddDuration(elapsed)

	return nil
}

func (rm *recipeMeasure) OnStepSkipped(_ *model.PreparationInfo, _, step *model.StepInfo) error {
	rm.AddMetric(step.ID()).AddSkipped()

	return nil
}

// AfterPreparation records the total preparation time on the end step.
func (rm *recipeMeasure) AfterPreparation(_ *model.PreparationInfo, _ *model.StepInfo, totalDuration time.Duration) error {
	rm.AddMetric(model.EndStep.ID()).AddDuration(totalDuration)

	return nil
}

func (rm *recipeMeasure) Finish() error {
	return nil
}

// RecipeMeasure returns a recipe option recording step durations into measure.
func RecipeMeasure(measure Measure) model.RecipeOption {
	return &recipeMeasure{measure}
}
