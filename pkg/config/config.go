package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Wallet WalletConfig `mapstructure:"wallet"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type WalletConfig struct {
	// Network selects the chain parameters; only "mainnet" is
	// supported for now.
	Network string `mapstructure:"network"`
	// WordCount is the mnemonic length used by `wallet-cli new`:
	// 12, 15, 18, 21 or 24.
	WordCount int `mapstructure:"word_count"`
	// BTCPath and ETHPath are the default BIP-44 derivation paths.
	BTCPath string `mapstructure:"btc_path"`
	ETHPath string `mapstructure:"eth_path"`
	// Passphrase is the optional BIP-39 passphrase, usually supplied
	// via the WALLET_PASSPHRASE environment variable.
	Passphrase string `mapstructure:"passphrase"`
}

var Global Config

func Init() {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("wallet")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file is fine; defaults and env vars apply.
		} else {
			log.Fatalf("Fatal error config file: %s \n", err)
		}
	}

	if err := viper.Unmarshal(&Global); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("app.env", "development")

	viper.SetDefault("wallet.network", "mainnet")
	viper.SetDefault("wallet.word_count", 24)
	viper.SetDefault("wallet.btc_path", "m/44'/0'/0'/0/0")
	viper.SetDefault("wallet.eth_path", "m/44'/60'/0'/0/0")
	viper.SetDefault("wallet.passphrase", "")
}
