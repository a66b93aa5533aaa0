package main

import "github.com/egytrade/tradedb/cmd"

func main() {
	cmd.Execute()
}
