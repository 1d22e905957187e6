package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// eval <expression...>: evaluate and print the result.
func evalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression...>",
		Short: "Evaluate an arithmetic expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			if remoteURL == "" {
				fmt.Fprintln(cmd.OutOrStdout(), colorResult(appCtx.Eval.Evaluate(expr)))
				return nil
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()
			if err := appCtx.Remote.Health(ctx); err != nil {
				return fmt.Errorf("calcpad server %s unreachable: %w", remoteURL, err)
			}
			d, err := appCtx.Remote.Evaluate(ctx, expr)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), colorResult(d.Result))
			return nil
		},
	}
	cmd.Flags().StringVar(&remoteURL, "remote", "", "evaluate on a calcpad server (e.g. http://127.0.0.1:8087)")
	return cmd
}
