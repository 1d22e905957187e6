package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// press <symbol...>: type symbols on a fresh keypad and print the display.
func pressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "press <symbol...>",
		Short: "Replay keypad symbols (= evaluates, C clears) and print the display",
		Example: `  calcpad press 1 . 5 × 4 =
  calcpad press - 5 + 3 =`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc := appCtx.NewCalculator()
			for _, arg := range args {
				switch strings.ToUpper(arg) {
				case "=":
					calc.Evaluate()
				case "C":
					calc.Clear()
				default:
					for _, r := range arg {
						calc.Append(string(r))
					}
				}
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, calc.Expression())
			fmt.Fprintln(out, colorResult(calc.Result()))
			return nil
		},
	}
}
