package cmd

import (
	"encoding/json"
	"os"

	"github.com/princinho/arcadiabackend/utils"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample data into empty collections and exit",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	store, client := openStore(cmd.Context())
	defer closeStore(client)

	report := utils.SeedCatalog(cmd.Context(), store, log)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
