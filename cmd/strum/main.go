package main

import (
	"github.com/strum-player/strum/internal/cli"
)

func main() {
	cli.Execute()
}
