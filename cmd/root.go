package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront CLI",
	Run: func(cmd *cobra.Command, args []string) {
		fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
		fig := figure.NewFigure("storefront", fonts[rand.Intn(len(fonts))], true)
		fig.Print()
		fmt.Println()
		cmd.Help()
	},
}

// Execute runs the CLI. Custom commands registered via Register are
// attached before dispatch.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
