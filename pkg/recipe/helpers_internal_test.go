package recipe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/w-029/DP-TemplatePattern/pkg/recipe/model"
)

// journal records notifications and hook evaluations in a single ordered list.
type journal struct {
	Recorder
}

func (j *journal) record(entry string) {
	_ = j.Notify(entry)
}

type spyBeverage struct {
	name     string
	brewErr  error
	addErr   error
	journal  *journal
	hookFunc func() bool
}

func (s *spyBeverage) Name() string {
	return s.name
}

func (s *spyBeverage) Brew(_ context.Context, n Notifier) error {
	if s.brewErr != nil {
		return s.brewErr
	}

	return n.Notify("brewing " + s.name)
}

func (s *spyBeverage) AddCondiments(_ context.Context, n Notifier) error {
	if s.addErr != nil {
		return s.addErr
	}

	return n.Notify("condiments for " + s.name)
}

// hookedBeverage is a spyBeverage overriding the hook.
type hookedBeverage struct {
	*spyBeverage
}

func (h hookedBeverage) CustomerWantsCondiments() bool {
	if h.journal != nil {
		h.journal.record("hook")
	}

	return h.hookFunc()
}

// plainBeverage has no Name method and no hook.
type plainBeverage struct{}

func (plainBeverage) Brew(_ context.Context, n Notifier) error { return n.Notify("plain brew") }

func (plainBeverage) AddCondiments(_ context.Context, n Notifier) error {
	return n.Notify("plain condiments")
}

// optionSpy records every call made to a recipe option.
type optionSpy struct {
	mu        sync.Mutex
	events    []string
	failOn    string
	finished  int
	initiated int
}

func (o *optionSpy) add(event string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
	if o.failOn != "" && o.failOn == event {
		return fmt.Errorf("option failed on %s", event)
	}

	return nil
}

func (o *optionSpy) Events() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	res := make([]string, len(o.events))
	copy(res, o.events)

	return res
}

func (o *optionSpy) New() error {
	o.initiated++
	if o.failOn == "new" {
		return fmt.Errorf("option failed on new")
	}

	return nil
}

func (o *optionSpy) BeforeStep(_ *model.PreparationInfo, parent, step *model.StepInfo) error {
	return o.add("before " + parent.ID() + " -> " + step.ID())
}

func (o *optionSpy) AfterStep(_ *model.PreparationInfo, _, step *model.StepInfo, _ time.Duration) error {
	return o.add("after " + step.ID())
}

func (o *optionSpy) OnStepSkipped(_ *model.PreparationInfo, _, step *model.StepInfo) error {
	return o.add("skipped " + step.ID())
}

func (o *optionSpy) AfterPreparation(prep *model.PreparationInfo, last *model.StepInfo, _ time.Duration) error {
	return o.add("prepared " + prep.Beverage + " last " + last.ID())
}

func (o *optionSpy) Finish() error {
	o.finished++
	if o.failOn == "finish" {
		return fmt.Errorf("option failed on finish")
	}

	return nil
}
