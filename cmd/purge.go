package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var purgeYes bool

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every stored collection",
	Args:  cobra.NoArgs,
	RunE:  runPurge,
}

func init() {
	purgeCmd.Flags().BoolVar(&purgeYes, "yes", false, "Confirm deletion of all data")
}

func runPurge(cmd *cobra.Command, args []string) error {
	if !purgeYes {
		return fmt.Errorf("refusing to delete all data without --yes")
	}

	st, _, cleanup := openStore()
	defer cleanup()

	st.Purge()
	fmt.Println("All collections deleted.")
	return nil
}
