package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func quoteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "quote <text>...",
		Short: "Escape each argument as a JSON string literal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), a.renderer.Quote(arg)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
