package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/config"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Dump all collections to JSONL files",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		defer func() { _ = store.Close() }()

		n, err := export.ExportAll(cmdContext(cmd), store, config.Namespace(), args[0])
		if err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("Exported %d records to %s\n", n, args[0])
	},
}

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Replace collections from JSONL files",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			FatalError("import requires a directory of .jsonl files")
		}
		store := openStore()
		defer func() { _ = store.Close() }()

		n, err := export.ImportAll(cmdContext(cmd), store, config.Namespace(), args[0])
		if err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("Imported %d records from %s\n", n, args[0])
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
