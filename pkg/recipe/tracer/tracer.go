// Package tracer provides a recipe option logging every step of a preparation.
package tracer

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/w-029/DP-TemplatePattern/pkg/recipe/model"
)

type recipeTracer struct {
	log logrus.FieldLogger
}

// RecipeTracer returns a recipe option logging steps at debug level and finished preparations at info level.
func RecipeTracer(log logrus.FieldLogger) model.RecipeOption {
	return &recipeTracer{log: log}
}

func (rt *recipeTracer) fields(prep *model.PreparationInfo, step *model.StepInfo) logrus.Fields {
	return logrus.Fields{
		"preparation": prep.ID,
		"beverage":    prep.Beverage,
		"step":        step.Name,
		"type":        string(step.Type),
	}
}

func (rt *recipeTracer) New() error {
	return nil
}

func (rt *recipeTracer) BeforeStep(prep *model.PreparationInfo, _, step *model.StepInfo) error {
	rt.log.WithFields(rt.fields(prep, step)).Debug("starting step")

	return nil
}

func (rt *recipeTracer) AfterStep(prep *model.PreparationInfo, _, step *model.StepInfo, elapsed time.Duration) error {
	rt.log.WithFields(rt.fields(prep, step)).WithField("elapsed", elapsed).Debug("step done")

	return nil
}

func (rt *recipeTracer) OnStepSkipped(prep *model.PreparationInfo, _, step *model.StepInfo) error {
	rt.log.WithFields(rt.fields(prep, step)).Debug("step skipped by hook")

	return nil
}

func (rt *recipeTracer) AfterPreparation(prep *model.PreparationInfo, lastStep *model.StepInfo, totalDuration time.Duration) error {
	rt.log.WithFields(logrus.Fields{
		"preparation": prep.ID,
		"beverage":    prep.Beverage,
		"last_step":   lastStep.Name,
		"elapsed":     totalDuration,
	}).Info("beverage prepared")

	return nil
}

func (rt *recipeTracer) Finish() error {
	return nil
}
