package main

import (
	"os"

	"github.com/cavanliu/watchlist/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
