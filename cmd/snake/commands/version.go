package commands

import (
	"fmt"

	"github.com/battlesnakeio/arcade/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the snake version",
	Run: func(*cobra.Command, []string) {
		fmt.Println(version.Version)
	},
}
