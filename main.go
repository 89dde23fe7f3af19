package main

import (
	"os"

	"github.com/llehouerou/tplay/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
