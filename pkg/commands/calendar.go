package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/negocio/pkg/agenda"
	"tableflip.dev/negocio/pkg/commands/options"
	"tableflip.dev/negocio/pkg/runner/calendar"
	"tableflip.dev/negocio/pkg/timeutil"
)

func addCalendar(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"calendario", "cal"},
		Short:   "print the month grid",
		Example: `
negocio calendar
negocio cal --date 1/12/2025
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			month := time.Now()
			if do.Date != "" {
				var err error
				if month, err = timeutil.ParseDisplayDate(do.Date); err != nil {
					return err
				}
			}

			s := calendar.Calendar{
				Month:  month,
				Agenda: agenda.New(),
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
