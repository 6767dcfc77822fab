package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scypher/scypher-core/internal/wallet"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a BIP39 mnemonic phrase",
	RunE: func(cmd *cobra.Command, args []string) error {
		phrase, _ := cmd.Flags().GetString("phrase")
		if phrase == "" {
			return fmt.Errorf("--phrase is required")
		}

		status := wallet.Validate(phrase)
		fmt.Printf("valid:   %v\n", status.Valid)
		fmt.Printf("status:  %s\n", status.Status)
		fmt.Printf("message: %s\n", status.Message)

		if logger != nil {
			logger.Validate(status.Valid)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringP("phrase", "p", "", "mnemonic phrase (required)")
	validateCmd.MarkFlagRequired("phrase")
	rootCmd.AddCommand(validateCmd)
}
