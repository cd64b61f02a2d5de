package model

import (
	"time"
)

type stepType string

const (
	FixedStepType     stepType = "fixed"
	DelegatedStepType stepType = "delegated"
	OptionalStepType  stepType = "optional"
)

const (
	BoilWaterStepName     = "boil water"
	BrewStepName          = "brew"
	PourInCupStepName     = "pour in cup"
	AddCondimentsStepName = "add condiments"
)

var (
	StartStep = &StepInfo{Type: FixedStepType, Name: "start"}
	EndStep   = &StepInfo{Type: FixedStepType, Name: "end"}
)

// StepInfo describes one step of the recipe for a given beverage.
type StepInfo struct {
	Type     stepType
	Name     string
	Beverage string
}

// ID returns a key identifying the step across preparations.
// Fixed steps are shared by every beverage, the other steps belong to one beverage.
func (s *StepInfo) ID() string {
	if s.Type == FixedStepType || s.Beverage == "" {
		return s.Name
	}

	return s.Beverage + "/" + s.Name
}

// PreparationInfo describes a single call to prepare a beverage.
type PreparationInfo struct {
	ID        string
	Beverage  string
	StartTime time.Time
}
