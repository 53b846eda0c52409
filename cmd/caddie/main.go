package main

import (
	"github.com/mpfeif/caddiebook/internal/cli"
)

func main() {
	cli.Execute()
}
