package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cybergodev/jsonutils"
)

func numberCmd(a *app) *cobra.Command {
	var lenient bool
	var transform bool

	c := &cobra.Command{
		Use:   "number <value>...",
		Short: "Print the canonical JSON text of each number",
		Long: `Arguments are parsed as floats, so NaN and Inf are accepted as input.
By default a non-finite number is an error; with --lenient it prints null.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := parseNumberArg(arg)
				if err != nil {
					return err
				}
				if transform {
					n = jsonutils.TransformNumber(n)
				}

				var out string
				if f, ok := n.(float64); ok && lenient {
					out = jsonutils.DoubleToString(f)
				} else {
					out, err = jsonutils.NumberToString(n)
					if err != nil {
						a.logger.Warn("Invalid number", zap.String("value", arg), zap.Error(err))
						return err
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%T\n", out, n)
			}
			return nil
		},
	}

	c.Flags().BoolVar(&lenient, "lenient", false, "print null for NaN and infinities instead of failing")
	c.Flags().BoolVar(&transform, "transform", false, "narrow the parsed number before printing")
	return c
}

// parseNumberArg keeps integers as int64 and literals outside the float64
// range as json.Number.
func parseNumberArg(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	switch {
	case err == nil:
		return f, nil
	case errors.Is(err, strconv.ErrRange):
		return json.Number(s), nil
	default:
		return nil, fmt.Errorf("%q is not a number", s)
	}
}
