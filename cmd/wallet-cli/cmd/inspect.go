package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hdwallet-core/pkg/bip32"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <xprv|xpub>",
	Short: "Decode a serialized extended key",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		net := networkParams()

		key, err := bip32.NewKeyFromString(args[0], net)
		if err != nil {
			fmt.Printf("Failed to parse extended key: %v\n", err)
			os.Exit(1)
		}

		keyType := "public"
		if key.IsPrivate() {
			keyType = "private"
		}
		fmt.Printf("Type:               %s\n", keyType)
		fmt.Printf("Depth:              %d\n", key.Depth())
		fmt.Printf("Parent fingerprint: %s\n", hex.EncodeToString(key.ParentFingerprint()))
		fmt.Printf("Child index:        %d\n", key.ChildIndex())
		fmt.Printf("Chain code:         %s\n", hex.EncodeToString(key.ChainCode()))
		fmt.Printf("Fingerprint:        %s\n", hex.EncodeToString(key.Fingerprint()))
		fmt.Printf("Key ID:             %s\n", hex.EncodeToString(key.ID()))

		if addr, err := key.Address(net); err == nil {
			fmt.Printf("P2PKH address:      %s\n", addr.EncodeAddress())
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
