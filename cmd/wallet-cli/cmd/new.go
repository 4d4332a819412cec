package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hdwallet-core/pkg/address"
	"hdwallet-core/pkg/bip32"
	"hdwallet-core/pkg/bip39"
	"hdwallet-core/pkg/config"
	"hdwallet-core/pkg/logger"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new wallet",
	Long: `Generate a fresh random BIP-39 mnemonic and print the derived seed,
master extended keys and default BTC/ETH addresses.`,
	Run: func(cmd *cobra.Command, args []string) {
		words, _ := cmd.Flags().GetInt("words")
		if words == 0 {
			words = config.Global.Wallet.WordCount
		}
		bitSize := words / 3 * 32
		net := networkParams()

		mnemonic, err := bip39.NewMnemonic(bitSize, nil)
		if err != nil {
			fmt.Printf("Failed to generate mnemonic: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("---------------------------------------------------")
		fmt.Printf("Mnemonic:\n%s\n", mnemonic)
		fmt.Println("---------------------------------------------------")

		seed := mnemonic.ToSeed(config.Global.Wallet.Passphrase)
		fmt.Printf("Seed (hex): %s\n", hex.EncodeToString(seed))

		masterKey, err := bip32.NewMaster(seed, net)
		if err != nil {
			fmt.Printf("Failed to create master key: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Master xprv: %s\n", masterKey.String())

		pubMasterKey, err := masterKey.Neuter()
		if err != nil {
			fmt.Printf("Failed to neuter master key: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Master xpub: %s\n", pubMasterKey.String())
		fmt.Println("---------------------------------------------------")

		// Default BIP-44 receive addresses.
		btcPath := config.Global.Wallet.BTCPath
		btcKey, err := masterKey.DerivePath(btcPath)
		if err != nil {
			logger.Error("btc derivation failed", zap.String("path", btcPath), zap.Error(err))
		} else {
			ecPubKey, _ := btcKey.ECPubKey()
			btcGen := address.NewBTCGenerator(net)
			btcAddr, err := btcGen.PubKeyToAddress(ecPubKey.SerializeCompressed())
			if err == nil {
				fmt.Printf("Bitcoin address  [%s]: %s\n", btcPath, btcAddr)
			}
		}

		ethPath := config.Global.Wallet.ETHPath
		ethKey, err := masterKey.DerivePath(ethPath)
		if err != nil {
			logger.Error("eth derivation failed", zap.String("path", ethPath), zap.Error(err))
		} else {
			ecPubKey, _ := ethKey.ECPubKey()
			ethGen := address.NewETHGenerator()
			ethAddr, err := ethGen.PubKeyToAddress(ecPubKey.SerializeUncompressed())
			if err == nil {
				fmt.Printf("Ethereum address [%s]: %s\n", ethPath, ethAddr)
			}
		}
		fmt.Println("---------------------------------------------------")
		fmt.Println("Keep the mnemonic safe. Anyone holding it controls every key in this wallet.")
	},
}

func init() {
	newCmd.Flags().Int("words", 0, "mnemonic length: 12, 15, 18, 21 or 24 (default from config)")
	rootCmd.AddCommand(newCmd)
}
