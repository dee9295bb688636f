package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const service = "storefront"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Gift card storefront server",
	Long:          "Serves the storefront bundle and its catalog, admin and quote API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(categoriesCmd)
}
