package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the assembled controllers with scope and inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, n := range appCtx.Graph() {
				fmt.Fprintf(out, "%-24s %-9s %-26s <- %s\n",
					n.Key, n.Scope, n.Type, strings.Join(n.DependsOn, ", "))
			}
			return nil
		},
	}
}
