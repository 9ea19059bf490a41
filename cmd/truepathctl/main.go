// Package main is the entry point for truepathctl, the site's operator CLI.
package main

import (
	"os"

	"github.com/truepath/advocates-site/cmd/truepathctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
