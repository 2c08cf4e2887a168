// Package cli provides the snapfs command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/keshon/snapfs/internal/fs"
	"github.com/keshon/snapfs/internal/pathspec"
	"github.com/keshon/snapfs/internal/store"
)

var verboseFlag bool

const rootLongDescription = `Snapfs turns glob-selected directory trees into immutable, fingerprinted
snapshots backed by a local content-addressed store.

Globs follow git syntax: '*' matches within one path segment, '**' across
segments. Excludes remove paths matched by the includes.`

var rootCmd = &cobra.Command{
	Use:   "snapfs",
	Short: "Content-addressed filesystem snapshots",
	Long:  rootLongDescription,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		configureLogger(verboseFlag)

		behavior, err := pathspec.ParseBehavior(viper.GetString(onMismatchKey))
		if err != nil {
			return err
		}
		pathspec.SetDefaultBehavior(behavior)
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.String(storeDirFlagName, viper.GetString(storeDirKey), "store directory")
	bindFlagToConfig(pf.Lookup(storeDirFlagName), storeDirKey)

	pf.String(onMismatchFlagName, viper.GetString(onMismatchKey),
		"policy when an include glob matches nothing: ignore, warn or error")
	bindFlagToConfig(pf.Lookup(onMismatchFlagName), onMismatchKey)

	pf.BoolVarP(&verboseFlag, verboseFlagName, "v", false, "debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values
// feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}
	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// openManager initializes the store under the configured directory.
func openManager() (*store.Manager, error) {
	m, err := store.InitAt(fs.NewOSFS(), viper.GetString(storeDirKey))
	if err != nil {
		return nil, err
	}
	m.Progress = os.Stderr
	return m, nil
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
