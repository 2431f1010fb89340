package commands

import (
	"github.com/spf13/cobra"
)

// removeAllKeyword uninstalls every version at once, matching the upstream
// tool's convention.
const removeAllKeyword = "ALL"

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <version|ALL>",
		Short: "Uninstall a Vyper version, or every version with ALL",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if args[0] == removeAllKeyword {
				return c.app.RemoveAll()
			}
			return c.app.Remove(args[0])
		},
	}
}
