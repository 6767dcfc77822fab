package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scypher/scypher-core/internal/config"
	"github.com/scypher/scypher-core/internal/wallet"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive HD addresses for one or more chains from a mnemonic phrase",
	RunE: func(cmd *cobra.Command, args []string) error {
		phrase, _ := cmd.Flags().GetString("phrase")
		passphrase, _ := cmd.Flags().GetString("passphrase")
		chainsFlag, _ := cmd.Flags().GetString("chains")
		count, _ := cmd.Flags().GetInt("count")
		noPassphraseChains, _ := cmd.Flags().GetString("no-passphrase-for")

		if strings.TrimSpace(phrase) == "" {
			return fmt.Errorf("--phrase is required")
		}
		if strings.TrimSpace(chainsFlag) == "" {
			return fmt.Errorf("--chains is required")
		}

		excluded := make(map[string]bool)
		for _, c := range strings.Split(noPassphraseChains, ",") {
			c = strings.TrimSpace(c)
			if c != "" {
				excluded[c] = true
			}
		}

		var networks []config.NetworkConfig
		for _, c := range strings.Split(chainsFlag, ",") {
			c = strings.TrimSpace(c)
			if c == "" {
				continue
			}
			networks = append(networks, config.NetworkConfig{
				Chain:         config.ChainID(c),
				Count:         count,
				UsePassphrase: !excluded[c],
			})
		}

		set, failures := wallet.Derive(phrase, passphrase, networks)

		for _, chain := range set.Chains() {
			records, _ := set.Get(chain)
			fmt.Printf("%s:\n", chain)
			for _, r := range records {
				fmt.Printf("  [%s] %s -> %s\n", r.Variant, r.Path, r.Address)
			}
		}
		for _, err := range failures {
			fmt.Printf("error: %v\n", err)
		}

		if logger != nil {
			for _, nc := range networks {
				var chainErr error
				if _, ok := set.Get(nc.Chain); !ok {
					chainErr = fmt.Errorf("failed")
				}
				logger.Derive(string(nc.Chain), nc.Count, chainErr)
			}
		}
		return nil
	},
}

func init() {
	deriveCmd.Flags().StringP("phrase", "p", "", "mnemonic phrase (required)")
	deriveCmd.Flags().String("passphrase", "", "optional BIP39 passphrase")
	deriveCmd.Flags().String("chains", "", "comma-separated chain identifiers, e.g. bitcoin,ethereum (required)")
	deriveCmd.Flags().IntP("count", "c", 1, "addresses per chain (1-100)")
	deriveCmd.Flags().String("no-passphrase-for", "", "comma-separated chains that should ignore the passphrase (cardano, solana)")
	deriveCmd.MarkFlagRequired("phrase")
	deriveCmd.MarkFlagRequired("chains")
	rootCmd.AddCommand(deriveCmd)
}
