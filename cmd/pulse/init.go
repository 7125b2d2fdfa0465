package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/config"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/storage/sqlite"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the .pulse directory, config file and database",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, err := config.WriteDefault(config.AppDirName)
		if err != nil {
			FatalError("%v", err)
		}

		store, err := sqlite.New(config.DatabasePath())
		if err != nil {
			FatalError("%v", err)
		}
		defer func() { _ = store.Close() }()

		fmt.Printf("Initialized: %s\n", configPath)
		fmt.Printf("Database:    %s\n", store.Path())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
