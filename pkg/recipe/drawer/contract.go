package drawer

import (
	"time"

	"github.com/w-029/DP-TemplatePattern/pkg/recipe/measure"
	"github.com/w-029/DP-TemplatePattern/pkg/recipe/model"
)

// Drawer is an interface that defines the methods for drawing the steps run by a recipe.
type Drawer interface {
	// AddStep adds a step to the recipe drawer. Adding a step twice is a no-op.
	AddStep(step *model.StepInfo) error
	// AddLink adds a link between two executed steps.
	AddLink(parentStepID, childStepID string) error
	// AddSkippedLink adds a link to a step the hook skipped.
	AddSkippedLink(parentStepID, childStepID string) error
	// Draw writes the recipe graph.
	Draw() error
	// SetTotalTime sets the time elapsed since startTime on the step.
	SetTotalTime(stepID string, startTime time.Time) error
	// AddMeasure adds a measure to the recipe drawer.
	AddMeasure(measure measure.Measure) error
}
