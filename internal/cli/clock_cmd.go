package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/timeledger/internal/cli/formatter"
	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/spf13/cobra"
)

// clockFlags are shared by every subcommand that records an event.
type clockFlags struct {
	employee string
	at       string
	note     string
}

func (f *clockFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.employee, "employee", "e", "", "Employee ID, ID prefix or email")
	cmd.Flags().StringVar(&f.at, "at", "", "Event time (RFC3339, or HH:MM today); defaults to now")
	cmd.Flags().StringVar(&f.note, "note", "", "Optional note")
	_ = cmd.MarkFlagRequired("employee")
}

func newClockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Record and list time entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runClockWizard(cmd, app)
		},
	}

	cmd.AddCommand(
		newClockKindCmd(app, "in", "Check in", domain.EventCheckIn),
		newClockKindCmd(app, "out", "Check out", domain.EventCheckOut),
		newClockKindCmd(app, "pause", "Start a pause", domain.EventPauseStart),
		newClockKindCmd(app, "resume", "End a pause", domain.EventPauseEnd),
		newClockRecordCmd(app),
		newClockListCmd(app),
	)

	return cmd
}

func newClockKindCmd(app *App, use, short string, kind domain.EventKind) *cobra.Command {
	var f clockFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordEvent(cmd, app, f, kind)
		},
	}
	f.register(cmd)
	return cmd
}

func newClockRecordCmd(app *App) *cobra.Command {
	var f clockFlags
	var kind domain.EventKind

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record an event of any kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordEvent(cmd, app, f, kind)
		},
	}
	f.register(cmd)
	cmd.Flags().Var(newEventKindValue(&kind), "kind", "Event kind")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func recordEvent(cmd *cobra.Command, app *App, f clockFlags, kind domain.EventKind) error {
	ctx := context.Background()

	subjectID, err := resolveEmployeeID(ctx, app, f.employee)
	if err != nil {
		return err
	}
	at, err := parseEventTime(f.at, time.Now())
	if err != nil {
		return err
	}

	return recordAndPrint(ctx, cmd, app, subjectID, kind, at, f.note)
}

func recordAndPrint(ctx context.Context, cmd *cobra.Command, app *App, subjectID string, kind domain.EventKind, at time.Time, note string) error {
	event, err := app.Clock.Record(ctx, subjectID, kind, at, note)
	if err != nil {
		return err
	}
	employee, err := app.Employees.GetByID(ctx, subjectID)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecorded(event, employee.FullName()))
	return nil
}

func runClockWizard(cmd *cobra.Command, app *App) error {
	ctx := context.Background()

	var subjectID, note string
	kind := domain.EventCheckIn
	form := wizardClockEvent(ctx, app, &subjectID, &kind, &note)
	if form == nil {
		return fmt.Errorf("no employees yet; add one with 'timeledger employee add'")
	}
	if err := form.Run(); err != nil {
		return err
	}

	return recordAndPrint(ctx, cmd, app, subjectID, kind, time.Time{}, note)
}

// parseEventTime accepts RFC3339 or a local HH:MM on the day of now. An empty
// string yields the zero time, which the clock service replaces with now.
func parseEventTime(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	clock, err := time.ParseInLocation("15:04", s, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at %q (want RFC3339 or HH:MM)", s)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location()), nil
}

func newClockListCmd(app *App) *cobra.Command {
	var employee string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List an employee's most recent time entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			subjectID, err := resolveEmployeeID(ctx, app, employee)
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = app.EventLimit
			}
			events, err := app.Clock.ListRecent(ctx, subjectID, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEvents(events))
			return nil
		},
	}

	cmd.Flags().StringVarP(&employee, "employee", "e", "", "Employee ID, ID prefix or email")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum entries to show (defaults to the configured event limit)")
	_ = cmd.MarkFlagRequired("employee")
	return cmd
}
