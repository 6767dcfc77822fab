// Command scypher is a thin CLI collaborator over internal/wallet: it
// reads flags/config, calls the core, and prints the returned structures.
// It owns no crypto (spec.md §6 "CLI collaborator").
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scypher/scypher-core/internal/config"
	"github.com/scypher/scypher-core/internal/obslog"
)

var (
	cfgFile string
	version = "1.0.0"
	logger  *obslog.Logger
)

var rootCmd = &cobra.Command{
	Use:     "scypher",
	Short:   "SCypher reversible seed transform and multi-chain address derivation",
	Version: version,
	Long: `scypher is a local, offline tool that performs two coupled operations
over BIP39 mnemonic seed phrases: a deterministic password-keyed reversible
transform, and hierarchical-deterministic address derivation across ten
blockchains.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.scypher.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".scypher")
	}

	config.BindCLIDefaults(viper.GetViper())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	l, err := obslog.New()
	if err == nil {
		logger = l
	}
}

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if logger != nil {
			logger.Sync()
		}
		os.Exit(1)
	}
	if logger != nil {
		logger.Sync()
	}
}
