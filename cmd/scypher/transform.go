package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scypher/scypher-core/internal/wallet"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Apply the SCypher reversible transform to a mnemonic phrase",
	RunE: func(cmd *cobra.Command, args []string) error {
		phrase, _ := cmd.Flags().GetString("phrase")
		password, _ := cmd.Flags().GetString("password")
		if strings.TrimSpace(phrase) == "" {
			return fmt.Errorf("--phrase is required")
		}
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		out, err := wallet.Transform(phrase, password)
		if err != nil {
			return fmt.Errorf("transform: %w", err)
		}

		fmt.Println(out)
		if logger != nil {
			logger.Transform(len(strings.Fields(out)))
		}
		return nil
	},
}

func init() {
	transformCmd.Flags().StringP("phrase", "p", "", "mnemonic phrase (required)")
	transformCmd.Flags().StringP("password", "P", "", "transform password (required)")
	transformCmd.MarkFlagRequired("phrase")
	transformCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(transformCmd)
}
