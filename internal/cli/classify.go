package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/trailkit/pkg/mediakind"
	"github.com/mesh-intelligence/trailkit/pkg/types"
)

// classification is one row of classify output.
type classification struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func newClassifyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <name>...",
		Short: "Print the media kind (image, audio, video, other) of file names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := e.settings()
			if err != nil {
				return err
			}

			rows := make([]classification, 0, len(args))
			for _, name := range args {
				rows = append(rows, classification{Name: name, Kind: mediakind.Classify(name).String()})
			}

			if settings.Output == types.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}

			var sb strings.Builder
			tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\n", r.Kind, r.Name)
			}
			if err := tw.Flush(); err != nil {
				return sysError(err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), sb.String())
			return err
		},
	}
}
