package cli

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/keshon/snapfs/internal/store/blob"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Recompute every stored block's fingerprint and report damage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}

		checks, err := m.Verify(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), renderVerifyTable(checks))

		bad := 0
		for _, c := range checks {
			if c.Status != blob.OK {
				bad++
			}
		}
		if bad > 0 {
			return fmt.Errorf("%d of %d blocks failed verification", bad, len(checks))
		}
		return nil
	},
}

func renderVerifyTable(checks []blob.Check) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Block", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, c := range checks {
		table.Append([]string{c.Hash, c.Status.String()})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(checks)), ""})

	table.Render()
	return buf.String()
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
