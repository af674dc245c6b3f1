package completer

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/calyptia/getmein/gcp"
)

// CompleteOS completes the OS argument of "start", the second positional.
func CompleteOS(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 1 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var out []string
	for _, k := range gcp.OSKeys() {
		if strings.HasPrefix(k, toComplete) {
			out = append(out, k)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
