// adminctl manages FolioVault accounts and seed data directly against
// the configured data directory, without going through the HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "FolioVault administration CLI",
	Long:  "Manage admin accounts and seed data for a FolioVault installation.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
