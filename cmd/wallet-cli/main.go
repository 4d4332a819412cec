package main

import "hdwallet-core/cmd/wallet-cli/cmd"

func main() {
	cmd.Execute()
}
