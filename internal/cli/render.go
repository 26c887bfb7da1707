package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func renderCmd(a *app) *cobra.Command {
	var pretty bool
	var indent int

	c := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a YAML or JSON document as JSON text",
		Long: `Reads a document from file, or from stdin when no file is given, and
writes it as JSON. Mapping keys keep their source order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			doc, err := decodeDocument(data)
			if err != nil {
				return err
			}

			var out string
			if pretty || cmd.Flags().Changed("indent") {
				if !cmd.Flags().Changed("indent") {
					indent = a.config.IndentFactor
				}
				out, err = a.renderer.RenderIndent(doc, indent, 0)
			} else {
				out, err = a.renderer.Render(doc)
			}
			if err != nil {
				a.logger.Error("Render failed", zap.Error(err))
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	c.Flags().BoolVarP(&pretty, "pretty", "p", false, "indent output using the configured indent factor")
	c.Flags().IntVarP(&indent, "indent", "i", 0, "spaces per nesting level (implies --pretty)")
	return c
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}
