package model

import "time"

// RecipeOption defines the interface for recipe options.
// Options may be shared by concurrent preparations and must be safe for concurrent use.
type RecipeOption interface {
	// New initialises the recipe option.
	New() error

	// BeforeStep runs before a step is executed.
	BeforeStep(prep *PreparationInfo, parentStep, step *StepInfo) error
	// AfterStep runs after a step returned without error.
	AfterStep(prep *PreparationInfo, parentStep, step *StepInfo, elapsed time.Duration) error
	// OnStepSkipped runs when the hook decided not to execute the optional step.
	OnStepSkipped(prep *PreparationInfo, parentStep, step *StepInfo) error
	// AfterPreparation runs once the last step of a preparation is done.
	AfterPreparation(prep *PreparationInfo, lastStep *StepInfo, totalDuration time.Duration) error

	// Finish runs when the recipe is finished.
	Finish() error
}
