package cli

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/keshon/snapfs/internal/store/snapshot"
)

var lsCmd = &cobra.Command{
	Use:   "ls [fingerprint]",
	Short: "List snapshots, or the entries of one snapshot",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			snaps, err := m.List()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderSnapshotTable(snaps))
			return nil
		}

		snap, err := m.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderEntryTable(snap))
		return nil
	},
}

func renderSnapshotTable(snaps []snapshot.Snapshot) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Fingerprint", "Files", "Dirs", "Serialized"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	for _, s := range snaps {
		table.Append([]string{
			s.Digest.Fingerprint,
			fmt.Sprintf("%d", len(s.Files())),
			fmt.Sprintf("%d", len(s.Dirs())),
			fmt.Sprintf("%d", s.Digest.SerializedBytes),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(snaps)), "", "", "",
	})

	table.Render()
	return buf.String()
}

func renderEntryTable(snap snapshot.Snapshot) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Path", "Kind", "Size", "Blocks"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER,
	})

	var totalSize int64
	for _, ps := range snap.PathStats {
		table.Append([]string{
			ps.Path,
			ps.Kind.String(),
			fmt.Sprintf("%d", ps.Size),
			fmt.Sprintf("%d", len(ps.Blocks)),
		})
		totalSize += ps.Size
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(snap.PathStats)), "",
		fmt.Sprintf("%d", totalSize), "",
	})

	table.Render()
	return buf.String()
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
