package cli

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/w-029/DP-TemplatePattern/pkg/beverage"
	"github.com/w-029/DP-TemplatePattern/pkg/recipe"
	"github.com/w-029/DP-TemplatePattern/pkg/recipe/drawer"
	"github.com/w-029/DP-TemplatePattern/pkg/recipe/measure"
	"github.com/w-029/DP-TemplatePattern/pkg/recipe/model"
	"github.com/w-029/DP-TemplatePattern/pkg/recipe/tracer"
)

var ErrNothingOrdered = errors.New("no beverage ordered")

type brewFlags struct {
	noCondiments bool
	graphOutput  string
	measure      bool
	concurrency  int
}

func (a *app) newBrewCmd() *cobra.Command {
	flags := brewFlags{}

	cmd := &cobra.Command{
		Use:   "brew [beverage...]",
		Short: "Prepare the given beverages, or the configured order",
		Example: `  barista brew coffee
  barista brew tea black-coffee --concurrency 2
  barista brew coffee --no-condiments --graph recipe.dot`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("concurrency") {
				a.cfg.Order.Concurrency = flags.concurrency
			}
			if flags.noCondiments {
				a.cfg.Order.Condiments = false
			}
			if flags.graphOutput != "" {
				a.cfg.Graph.Output = flags.graphOutput
			}
			if flags.measure {
				a.cfg.Graph.Measure = true
			}
			if len(args) > 0 {
				a.cfg.Order.Beverages = args
			}

			return a.brew(cmd)
		},
	}

	cmd.Flags().BoolVar(&flags.noCondiments, "no-condiments", false, "Never add condiments")
	cmd.Flags().StringVar(&flags.graphOutput, "graph", "", "Write the recipe graph to this DOT file")
	cmd.Flags().BoolVar(&flags.measure, "measure", false, "Log the average duration of every step")
	cmd.Flags().IntVarP(&flags.concurrency, "concurrency", "c", 1, "Number of beverages prepared at the same time")

	return cmd
}

func (a *app) order() ([]recipe.Beverage, error) {
	if len(a.cfg.Order.Beverages) == 0 {
		return nil, ErrNothingOrdered
	}

	bevs := make([]recipe.Beverage, 0, len(a.cfg.Order.Beverages))
	for _, name := range a.cfg.Order.Beverages {
		bev, err := beverage.Lookup(name)
		if err != nil {
			return nil, err
		}
		if !a.cfg.Order.Condiments {
			bev = beverage.WithCondiments(bev, false)
		}
		bevs = append(bevs, bev)
	}

	return bevs, nil
}

func (a *app) brew(cmd *cobra.Command) error {
	bevs, err := a.order()
	if err != nil {
		return err
	}

	opts := []model.RecipeOption{tracer.RecipeTracer(a.log)}

	var msr *measure.DefaultMeasure
	if a.cfg.Graph.Measure || a.cfg.Graph.Output != "" {
		msr = measure.NewDefaultMeasure()
		opts = append(opts, measure.RecipeMeasure(msr))
	}
	if a.cfg.Graph.Output != "" {
		opts = append(opts, drawer.RecipeDrawer(drawer.NewDOTFileDrawer(a.cfg.Graph.Output), msr))
	}

	rcp, err := recipe.New(recipe.NewWriterNotifier(cmd.OutOrStdout()), opts...)
	if err != nil {
		return errors.Wrap(err, "unable to create recipe")
	}

	err = rcp.PrepareAll(cmd.Context(), a.cfg.Order.Concurrency, bevs...)
	if err != nil {
		return errors.Wrap(err, "unable to prepare order")
	}

	err = rcp.Finish()
	if err != nil {
		return err
	}

	if a.cfg.Graph.Measure && msr != nil {
		a.logMeasure(msr)
	}
	if a.cfg.Graph.Output != "" {
		a.log.WithField("file", a.cfg.Graph.Output).Info("recipe graph written")
	}

	return nil
}

func (a *app) logMeasure(msr measure.Measure) {
	metrics := msr.AllMetrics()
	stepIDs := make([]string, 0, len(metrics))
	for stepID := range metrics {
		stepIDs = append(stepIDs, stepID)
	}
	sort.Strings(stepIDs)

	for _, stepID := range stepIDs {
		mt := metrics[stepID]
		a.log.WithFields(logrus.Fields{
			"step":    stepID,
			"average": mt.AVGDuration(),
			"count":   mt.Count(),
			"skipped": mt.Skipped(),
		}).Info("step measure")
	}
}
