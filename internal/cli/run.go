package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fireworks-show/internal/config"
	"fireworks-show/internal/logging"
	"fireworks-show/internal/show"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init <scenario.toml>",
		Short: "Write an example scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteScenarioTemplate(args[0]); err != nil {
				return err
			}
			app.Logger.Debug().Str("path", args[0]).Msg("Scenario template written")
			output := NewOutput(cmd)
			output.Success("Wrote example scenario to %s", args[0])
			output.Info("Replay it with: fireworks run %s", args[0])
			return nil
		},
	}
}

func newRunCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <scenario.toml>",
		Short: "Replay a scenario and print the town status",
		Long: `Replay every launch of a scenario against a fresh town, in file order.

Launches a show refuses are reported and skipped. The town is then advanced
to --until (or the scenario's until) and its status, warnings and cost are
printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := config.LoadScenario(args[0], app.Config)
			if err != nil {
				return err
			}

			var until *int
			if cmd.Flags().Changed("until") {
				t, _ := cmd.Flags().GetInt("until")
				until = &t
			}

			ctx := logging.WithLogger(cmd.Context(), app.Logger)
			report := NewReport(args[0], Play(ctx, sc, app.Config, until))

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(report)
			}
			printReport(output, report)
			return nil
		},
	}
	cmd.Flags().Int("until", 0, "advance the town to this tick after replaying")
	return cmd
}

func printReport(output *Output, r *Report) {
	for _, rej := range r.Rejections {
		if rej.Dispatch {
			output.Error("launch %d: %s", rej.Launch, rej.Reason)
		} else {
			output.Warning("launch %d: %s", rej.Launch, rej.Reason)
		}
	}

	output.Printf("%s\n", r.Status)

	output.Printf("Time:            %d\n", r.Time)
	output.Printf("Fireworks up:    %d\n", r.FireworksUp)
	output.Printf("Launches added:  %d of %d\n", r.Accepted, r.Accepted+len(r.Rejections))
	output.Printf("Town warnings:   %d%s\n", r.TotalWarnings, formatTicks(r.WarningTimes))
	for _, s := range r.Shows {
		output.Printf("  %-14s %d%s\n", s.Name+":", s.TotalWarnings, formatTicks(s.WarningTimes))
	}
	output.Bold("Total cost:      $%.2f", r.TotalCost)
	if r.Warning {
		output.Error("WARNING: every show is at or above %d%% capacity", show.WarningThreshold)
	}
	output.Dim("run %s", r.RunID)
}

func formatTicks(ticks []int) string {
	if len(ticks) == 0 {
		return ""
	}
	parts := make([]string, len(ticks))
	for i, t := range ticks {
		parts[i] = fmt.Sprint(t)
	}
	return " (ticks " + strings.Join(parts, ",") + ")"
}

// StatusPoint is the state of one show at a queried tick.
type StatusPoint struct {
	Name        string `json:"name"`
	FireworksUp int    `json:"fireworks_up"`
	Warning     bool   `json:"warning"`
}

// StatusReport answers a point-in-time query.
type StatusReport struct {
	RunID       string        `json:"run_id"`
	At          int           `json:"at"`
	FireworksUp int           `json:"fireworks_up"`
	Warning     bool          `json:"warning"`
	Shows       []StatusPoint `json:"shows"`
}

func newStatusCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <scenario.toml>",
		Short: "Show airborne fireworks and warnings at one tick",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := config.LoadScenario(args[0], app.Config)
			if err != nil {
				return err
			}
			at, _ := cmd.Flags().GetInt("at")

			ctx := logging.WithLogger(cmd.Context(), app.Logger)
			pb := Play(ctx, sc, app.Config, nil)

			report := StatusReport{
				RunID: pb.RunID,
				At:    at,
				Shows: make([]StatusPoint, 0, pb.Town.Len()),
			}
			for i := 0; i < pb.Town.Len(); i++ {
				v, err := pb.Town.Show(i)
				if err != nil {
					return err
				}
				p := StatusPoint{
					Name:        v.Name(),
					FireworksUp: v.FireworksUpAt(at),
					Warning:     v.HasWarningAt(at),
				}
				report.FireworksUp += p.FireworksUp
				report.Shows = append(report.Shows, p)
			}
			report.Warning = pb.Town.HasWarningAt(at)

			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(report)
			}
			output.Printf("At tick %d: %d fireworks up\n", at, report.FireworksUp)
			for _, p := range report.Shows {
				flag := ""
				if p.Warning {
					flag = " WARNING"
				}
				output.Printf("  %-14s %d up%s\n", p.Name+":", p.FireworksUp, flag)
			}
			if report.Warning {
				output.Error("Town warning at tick %d", at)
			}
			return nil
		},
	}
	cmd.Flags().Int("at", 0, "tick to inspect")
	return cmd
}
