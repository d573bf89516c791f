package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/trailkit/internal/paths"
	"github.com/mesh-intelligence/trailkit/internal/session"
	"github.com/mesh-intelligence/trailkit/pkg/clone"
	"github.com/mesh-intelligence/trailkit/pkg/types"
)

func newReplayCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a scripted UI session and print the resulting state",
		Long: `Replay applies a session script to an empty breadcrumb trail and selection and
prints the trail, cursor and selected items it leaves behind.

Scripts are YAML (.yaml, .yml) with an "ops" list, or JSONL (.jsonl) with one op
per line. Ops: push, goto, back, clear_trail, toggle, clear_selection.

A relative script name that does not exist in the working directory is looked
up in the data directory.

Example:
  trailkit replay browse.yaml
  trailkit replay --json session.jsonl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, e, args[0])
		},
	}
}

func runReplay(cmd *cobra.Command, e *env, name string) error {
	settings, err := e.settings()
	if err != nil {
		return err
	}
	dataDir, err := e.dataDir(settings)
	if err != nil {
		return err
	}

	path, err := paths.ResolveScript(name, dataDir)
	if err != nil {
		return sysError(err)
	}
	e.log.Debug("loading script", "path", path)

	script, err := session.LoadScript(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return userError(fmt.Errorf("script %q not found", name))
		}
		return userError(err)
	}

	snap, err := session.NewReplayer(e.log).Run(script)
	if err != nil {
		return userError(fmt.Errorf("replay %s: %w", script.Name, err))
	}

	// YAML scripts may carry values with non-string keys.
	for i := range snap.Selection {
		snap.Selection[i].Value = clone.StringKeys(snap.Selection[i].Value)
	}

	if settings.Output == types.OutputJSON {
		return writeJSON(cmd.OutOrStdout(), snap)
	}
	return writeSnapshotText(cmd.OutOrStdout(), snap)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return sysError(fmt.Errorf("encode output: %w", err))
	}
	return nil
}

// writeSnapshotText prints the trail as a breadcrumb line followed by tables
// of trail nodes and selected entries.
func writeSnapshotText(w io.Writer, snap *session.Snapshot) error {
	names := make([]string, 0, len(snap.Trail))
	for _, n := range snap.Trail {
		names = append(names, n.Name)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "session: %s\n", snap.SessionID)
	if len(names) == 0 {
		sb.WriteString("trail:   (empty)\n")
	} else {
		fmt.Fprintf(&sb, "trail:   %s\n", strings.Join(names, " > "))
	}

	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nIDX\tKIND\tNAME\tID")
	for i, n := range snap.Trail {
		marker := " "
		if i == snap.Cursor {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s%d\t%s\t%s\t%s\n", marker, i, n.Kind, n.Name, shortID(n.NodeID))
	}
	if err := tw.Flush(); err != nil {
		return sysError(err)
	}

	fmt.Fprintf(&sb, "\nselected: %d\n", len(snap.Selection))
	tw = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, entry := range snap.Selection {
		value, err := json.Marshal(entry.Value)
		if err != nil {
			value = []byte(fmt.Sprint(entry.Value))
		}
		fmt.Fprintf(tw, "  %s\t%s\n", entry.Key, value)
	}
	if err := tw.Flush(); err != nil {
		return sysError(err)
	}

	ignored := 0
	for _, s := range snap.Steps {
		if !s.Applied {
			ignored++
		}
	}
	fmt.Fprintf(&sb, "\nsteps: %d (%d ignored)\n", len(snap.Steps), ignored)

	_, err := io.WriteString(w, sb.String())
	return err
}

// shortID keeps the last 8 characters of an ID for display. UUID v7 values
// share their leading timestamp bits, so the tail is the distinguishing part.
func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}
