package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/keshon/snapfs/internal/pathspec"
)

var (
	includePatterns []string
	excludePatterns []string
)

var snapshotCmd = newSnapshotCmd()

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot [root]",
		Short: "Snapshot a directory tree by glob patterns",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			m, err := openManager()
			if err != nil {
				return err
			}

			// Never snapshot the store itself when it lives inside root.
			exclude := append([]string(nil), excludePatterns...)
			storeDir := filepath.ToSlash(viper.GetString(storeDirKey))
			exclude = append(exclude, storeDir, storeDir+"/**")

			req := pathspec.Request{
				Spec: pathspec.New(includePatterns, exclude, pathspec.BehaviorUnspecified),
				Root: root,
			}

			snap, err := m.Snapshot(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", snap.Digest.Fingerprint)
			fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d dirs, %d serialized bytes\n",
				len(snap.Files()), len(snap.Dirs()), snap.Digest.SerializedBytes)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&includePatterns, "include", "i", []string{"**"},
		"include glob (can be repeated)")
	cmd.Flags().StringArrayVarP(&excludePatterns, "exclude", "x", nil,
		"exclude glob (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}
