package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hdwallet-core/pkg/address"
	"hdwallet-core/pkg/bip32"
	"hdwallet-core/pkg/bip39"
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Derive a child key at a BIP-32 path",
	Long: `Derive the child extended key at a path like m/44'/0'/0'/0/0, starting
from either a serialized extended key (--key) or a mnemonic (--mnemonic).`,
	Run: func(cmd *cobra.Command, args []string) {
		keyStr, _ := cmd.Flags().GetString("key")
		mnemonicStr, _ := cmd.Flags().GetString("mnemonic")
		passphrase, _ := cmd.Flags().GetString("passphrase")
		path, _ := cmd.Flags().GetString("path")
		net := networkParams()

		var parent *bip32.ExtendedKey
		var err error
		switch {
		case keyStr != "":
			parent, err = bip32.NewKeyFromString(keyStr, net)
			if err != nil {
				fmt.Printf("Failed to parse extended key: %v\n", err)
				os.Exit(1)
			}
		case mnemonicStr != "":
			mnemonic := bip39.FromString(strings.TrimSpace(mnemonicStr))
			ok, err := mnemonic.Check(nil)
			if err != nil {
				fmt.Printf("Invalid mnemonic: %v\n", err)
				os.Exit(1)
			}
			if !ok {
				fmt.Println("Warning: mnemonic checksum does not verify")
			}
			parent, err = bip32.NewMaster(mnemonic.ToSeed(passphrase), net)
			if err != nil {
				fmt.Printf("Failed to create master key: %v\n", err)
				os.Exit(1)
			}
		default:
			fmt.Println("Either --key or --mnemonic is required")
			os.Exit(1)
		}

		child, err := parent.DerivePath(path)
		if err != nil {
			fmt.Printf("Derivation failed: %v\n", err)
			os.Exit(1)
		}

		if child.IsPrivate() {
			fmt.Printf("xprv: %s\n", child.String())
			wif, err := child.WIF(net)
			if err == nil {
				fmt.Printf("WIF:  %s\n", wif)
			}
			pub, err := child.Neuter()
			if err != nil {
				fmt.Printf("Failed to neuter child key: %v\n", err)
				os.Exit(1)
			}
			child = pub
		}
		fmt.Printf("xpub: %s\n", child.String())

		ecPubKey, err := child.ECPubKey()
		if err != nil {
			fmt.Printf("Failed to read public key: %v\n", err)
			os.Exit(1)
		}
		btcGen := address.NewBTCGenerator(net)
		if addr, err := btcGen.PubKeyToAddress(ecPubKey.SerializeCompressed()); err == nil {
			fmt.Printf("BTC address: %s\n", addr)
		}
		ethGen := address.NewETHGenerator()
		if addr, err := ethGen.PubKeyToAddress(ecPubKey.SerializeUncompressed()); err == nil {
			fmt.Printf("ETH address: %s\n", addr)
		}
	},
}

func init() {
	deriveCmd.Flags().String("key", "", "serialized extended key (xprv/xpub) to start from")
	deriveCmd.Flags().String("mnemonic", "", "mnemonic phrase to start from")
	deriveCmd.Flags().String("passphrase", "", "optional BIP-39 passphrase (with --mnemonic)")
	deriveCmd.Flags().String("path", "m", "derivation path, e.g. m/44'/0'/0'/0/0")
	rootCmd.AddCommand(deriveCmd)
}
