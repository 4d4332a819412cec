package cmd

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hdwallet-core/pkg/bip39"
)

var checkCmd = &cobra.Command{
	Use:   "check <mnemonic words...>",
	Short: "Validate a mnemonic's checksum",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mnemonic := bip39.FromString(strings.Join(args, " "))
		ok, err := mnemonic.Check(nil)
		if err != nil {
			fmt.Printf("Invalid mnemonic: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Println("Checksum: FAILED")
			os.Exit(1)
		}
		fmt.Println("Checksum: OK")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed <mnemonic words...>",
	Short: "Derive the BIP-39 seed from a mnemonic",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		passphrase, _ := cmd.Flags().GetString("passphrase")

		mnemonic := bip39.FromString(strings.Join(args, " "))
		ok, err := mnemonic.Check(nil)
		if err != nil {
			fmt.Printf("Invalid mnemonic: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Println("Warning: mnemonic checksum does not verify")
		}

		seed := mnemonic.ToSeed(passphrase)
		fmt.Printf("Seed (hex): %s\n", hex.EncodeToString(seed))
	},
}

func init() {
	seedCmd.Flags().String("passphrase", "", "optional BIP-39 passphrase")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(seedCmd)
}
