// Command folio serves the portfolio site.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A server-driven portfolio site built with Go, Echo and htmx",
	Long: `folio serves a single-owner portfolio: a home page with section
navigation, a project gallery with preview modals and a contact form that
delivers through EmailJS.

Configuration is read from a YAML file and FOLIO_* environment variables
(a .env file in the working directory is loaded first).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "folio.yaml", "config file path")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
