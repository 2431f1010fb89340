package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.vvm.dev/vvm/internal/app"
	"go.vvm.dev/vvm/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available, installed and active Vyper versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")

			snap, err := c.app.List(cmd.Context(), app.ListOptions{NoCache: noCache})
			if err != nil {
				return err
			}

			renderSnapshot(cmd.OutOrStdout(), snap)
			return nil
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the release list cache and query the catalog")
	return cmd
}

func renderSnapshot(w io.Writer, snap app.Snapshot) {
	installed := make(map[string]bool, len(snap.Installed))
	for _, version := range snap.Installed {
		installed[version.ID] = true
	}

	_, _ = fmt.Fprintln(w, style.Header.Render("Current version"))
	if snap.ActiveID != "" {
		_, _ = fmt.Fprintf(w, "  %s %s\n", style.Active.Render(style.Check), snap.ActiveID)
	} else {
		_, _ = fmt.Fprintln(w, "  (none set, run 'vvm use <version>')")
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, style.Header.Render("Installed versions"))
	if len(snap.Installed) == 0 {
		_, _ = fmt.Fprintln(w, "  (none)")
	}
	for _, version := range snap.Installed {
		icon := style.Installed.Render(style.Dot)
		if version.ID == snap.ActiveID {
			icon = style.Active.Render(style.Dot)
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", icon, version.ID)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, style.Header.Render("Available versions"))
	for _, release := range snap.Available {
		if installed[release.Version] {
			continue
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", style.Available.Render(style.Circle), release.Version)
	}
}
