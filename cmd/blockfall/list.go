package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered variant with the ID to pass to "play", "sim" and "config".`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	infos := registry.List()
	if len(infos) == 0 {
		_, err := fmt.Fprintln(out, "No variants available.")
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTITLE")
	for _, info := range infos {
		fmt.Fprintf(tw, "  %s\t%s\n", info.ID, info.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, "\nRun 'blockfall play <id>' to play a variant.")
	return err
}
