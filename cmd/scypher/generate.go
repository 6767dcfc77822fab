package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scypher/scypher-core/internal/wallet"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new BIP39 mnemonic phrase",
	RunE: func(cmd *cobra.Command, args []string) error {
		words, _ := cmd.Flags().GetInt("words")

		phrase, err := wallet.Generate(words)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		fmt.Println(phrase)
		if logger != nil {
			logger.Transform(words)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntP("words", "w", 24, "word count (12, 15, 18, 21, or 24)")
	rootCmd.AddCommand(generateCmd)
}
