package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/negocio/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "negocio",
		Short: base.Wrap80("Ventas, servicios y calendario para tu negocio, en la terminal."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addCatalog(topLevel)
	addLedger(topLevel)
	addCalendar(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

func loadConfig() (store.Config, error) {
	return store.LoadConfig()
}
