package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearDBCmd = &cobra.Command{
	Use:   "clear-db",
	Short: "Delete every collection in the namespace (no undo)",
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			FatalError("refusing to wipe the database without --force")
		}

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		if err := repos.ClearAll(cmdContext(cmd)); err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("Cleared all collections under namespace %q\n", repos.Namespace())
	},
}

func init() {
	clearDBCmd.Flags().Bool("force", false, "confirm the destructive wipe")
	rootCmd.AddCommand(clearDBCmd)
}
