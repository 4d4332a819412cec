package cmd

import (
	"fmt"
	"os"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/spf13/cobra"

	"hdwallet-core/pkg/config"
	"hdwallet-core/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "wallet-cli",
	Short: "Hierarchical deterministic wallet command line tool",
	Long: `A command line tool for BIP-39 mnemonics and BIP-32 hierarchical
deterministic keys: generate mnemonics, derive seeds and extended keys,
and inspect serialized xprv/xpub strings.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initApp)
}

func initApp() {
	config.Init()
	logger.Init(config.Global.App.Env)
}

// networkParams maps the configured network name to chain parameters.
// Only mainnet is supported.
func networkParams() *chaincfg.Params {
	switch config.Global.Wallet.Network {
	case "", "mainnet":
		return &chaincfg.MainNetParams
	default:
		fmt.Printf("Unsupported network %q, falling back to mainnet\n", config.Global.Wallet.Network)
		return &chaincfg.MainNetParams
	}
}
