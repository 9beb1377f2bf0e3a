package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/unclebandit/campaign-planner/internal/allocator"
	"github.com/unclebandit/campaign-planner/internal/catalog"
	"github.com/unclebandit/campaign-planner/internal/export"
	"github.com/unclebandit/campaign-planner/internal/model"
	"github.com/unclebandit/campaign-planner/internal/store"
)

type options struct {
	catalogPath string
	statePath   string
	goal        int
	timeHours   float64
	budget      float64
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "planner",
		Short:         "Campaign resource planner",
		Long:          `Split weekly volunteer hours and budget across outreach activities.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.PersistentFlags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Activity catalog YAML file")
	root.PersistentFlags().StringVar(&opts.statePath, "state", "", "State file remembering the last allocated plan")
	root.PersistentFlags().IntVar(&opts.goal, "goal", 0, "Voter contact goal (default from win number 1250)")

	root.AddCommand(allocateCmd(opts), lastCmd(opts), coupleCmd(opts), exportCmd(opts), goalCmd())
	return root
}

func (o *options) config() (allocator.Config, error) {
	defs, err := catalog.Load(o.catalogPath)
	if err != nil {
		return allocator.Config{}, err
	}
	cfg := allocator.DefaultConfig(defs)
	if o.goal > 0 {
		cfg.ContactGoal = o.goal
	}
	return cfg, nil
}

// sliders falls back to the middle of each range when a flag is not set.
func (o *options) sliders(cmd *cobra.Command, cfg allocator.Config) (float64, float64) {
	t, b := o.timeHours, o.budget
	if !cmd.Flags().Changed("time") {
		t = (cfg.MinTimeHours + cfg.MaxTimeHours) / 2
	}
	if !cmd.Flags().Changed("budget") {
		b, _ = cfg.DefaultBudget().Float64()
	}
	return t, b
}

func sliderFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().Float64VarP(&opts.timeHours, "time", "t", 0, "Volunteer hours per week")
	cmd.Flags().Float64VarP(&opts.budget, "budget", "b", 0, "Budget per week")
}

func allocateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Show the activity plan for the given hours and budget",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			t, b := opts.sliders(cmd, cfg)
			plan := allocator.Allocate(cfg, t, b)

			if opts.statePath != "" {
				st := store.NewFileStore(opts.statePath)
				if err := store.SetJSON(cmd.Context(), st, store.LastPlanKey, plan); err != nil {
					return err
				}
			}

			printPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}
	sliderFlags(cmd, opts)
	return cmd
}

func lastCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Show the plan saved by the last allocate run",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.statePath == "" {
				return fmt.Errorf("--state is required")
			}
			var plan model.Plan
			ok, err := store.GetJSON(cmd.Context(), store.NewFileStore(opts.statePath), store.LastPlanKey, &plan)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no plan saved in %s", opts.statePath)
			}
			printPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}
}

func printPlan(w io.Writer, plan model.Plan) {
	fmt.Fprintf(w, "Time: %.1f hours/week   Budget: $%s/week   Goal: %d contacts\n\n",
		plan.Resources.TimeHoursPerWeek, plan.Resources.BudgetPerWeek.StringFixed(2), plan.Resources.ContactGoal)

	fmt.Fprintf(w, "%-14s %-16s %9s %10s %7s %s\n", "ACTIVITY", "CATEGORY", "CONTACTS", "COST", "HOURS", "BATCHES")
	for _, it := range plan.Items {
		line := fmt.Sprintf("%-14s %-16s %9d %10s %7.1f %d %s",
			it.Name, it.Category, it.Contacts, "$"+it.Cost.StringFixed(2), it.TimeHours,
			it.CampaignCount, export.UnitLabel(it.CampaignCount, it.Unit))
		switch {
		case it.IsGreyedOut:
			line = color.HiBlackString("%s (greyed out)", line)
		case it.Category == model.CategoryMoneyIntensive:
			line = color.GreenString("%s", line)
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, color.CyanString("Total: %d contacts, $%s, %.1f hours",
		plan.Totals.Contacts, plan.Totals.Cost.StringFixed(2), plan.Totals.TimeHours))
}

func coupleCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "couple",
		Short: "Move one slider and print where the other one lands",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case cmd.Flags().Changed("time"):
				t := cfg.ClampTime(opts.timeHours)
				fmt.Fprintf(out, "time %.1f h/week -> budget $%s/week\n", t, allocator.BudgetForTime(cfg, t).String())
			case cmd.Flags().Changed("budget"):
				b := cfg.ClampBudget(opts.budget)
				fmt.Fprintf(out, "budget $%s/week -> time %.0f h/week\n", b.StringFixed(2), allocator.TimeForBudget(cfg, opts.budget))
			default:
				return fmt.Errorf("one of --time or --budget is required")
			}
			return nil
		},
	}
	sliderFlags(cmd, opts)
	return cmd
}

func exportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the plain-text campaign plan outline",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			t, b := opts.sliders(cmd, cfg)
			plan := allocator.Allocate(cfg, t, b)
			fmt.Fprint(cmd.OutOrStdout(), export.Outline(plan, time.Now()))
			return nil
		},
	}
	sliderFlags(cmd, opts)
	return cmd
}

func goalCmd() *cobra.Command {
	var win int
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Show the contact goal for a win number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if win < 0 {
				return fmt.Errorf("win number must not be negative")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Win number:    %d\nTarget voters: %d\nContact goal:  %d\n",
				win, allocator.TargetVoters(win), allocator.ContactGoal(win))
			return nil
		},
	}
	cmd.Flags().IntVarP(&win, "win-number", "w", allocator.DefaultWinNumber, "Votes needed to win")
	return cmd
}
