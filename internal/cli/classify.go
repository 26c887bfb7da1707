package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func classifyCmd(a *app) *cobra.Command {
	var raw bool

	c := &cobra.Command{
		Use:   "classify <value>...",
		Short: "Print the JSON kind and type class of each value",
		Long: `Each argument is decoded as a YAML value (numbers, booleans, null,
[sequences] and {mappings}) unless --raw is given, in which case it is
classified as plain text.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier := a.renderer.Classifier()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VALUE\tKIND\tTYPE CLASS\tGO TYPE")

			for _, arg := range args {
				var v any = arg
				if !raw {
					decoded, err := decodeArg(arg)
					if err != nil {
						return err
					}
					v = decoded
				}
				kind := classifier.Classify(v)
				a.logger.Debug("Classified value",
					zap.String("value", arg),
					zap.Stringer("kind", kind))
				fmt.Fprintf(w, "%s\t%s\t%s\t%T\n", arg, kind, kind.TypeClass(), v)
			}
			return w.Flush()
		},
	}

	c.Flags().BoolVar(&raw, "raw", false, "classify arguments as plain text")
	return c
}
