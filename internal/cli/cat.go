package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat <fingerprint> <path>",
	Short: "Print the content of one file inside a snapshot",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fingerprint, path := args[0], args[1]

		m, err := openManager()
		if err != nil {
			return err
		}

		contents, err := m.ContentsByFingerprint(cmd.Context(), fingerprint)
		if err != nil {
			return err
		}

		for _, fc := range contents {
			if fc.Path == path {
				_, err := cmd.OutOrStdout().Write(fc.Content)
				return err
			}
		}

		return fmt.Errorf("path %q not found in snapshot %s", path, fingerprint)
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}
