package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/ids"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

var driverCmd = &cobra.Command{
	Use:   "driver",
	Short: "Manage drivers",
}

var driverAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a driver",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		typeStr, _ := cmd.Flags().GetString("type")
		license, _ := cmd.Flags().GetString("license")
		phone, _ := cmd.Flags().GetString("phone")

		driverType := types.DriverType(typeStr)
		if !driverType.IsValid() {
			FatalError("invalid driver type %q (must be internal or external)", typeStr)
		}

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		saved, err := repos.Drivers.Save(cmdContext(cmd), types.Driver{
			ID:            ids.New(),
			Name:          args[0],
			LicenseNumber: license,
			Phone:         phone,
			Type:          driverType,
			CreatedAt:     time.Now(),
		})
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(saved)
			return
		}
		fmt.Printf("Added %s driver %s (%s)\n", saved.Type, saved.Name, saved.ID)
	},
}

var driverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drivers",
	Run: func(cmd *cobra.Command, args []string) {
		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		drivers, err := repos.Drivers.GetAll(cmdContext(cmd))
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(drivers)
			return
		}
		for _, d := range drivers {
			fmt.Printf("%-20s %-9s %-12s %s\n", d.ID, d.Type, d.LicenseNumber, d.Name)
		}
	},
}

func init() {
	driverAddCmd.Flags().String("type", string(types.DriverInternal), "type: internal|external")
	driverAddCmd.Flags().String("license", "", "license number")
	driverAddCmd.Flags().String("phone", "", "phone number")

	driverCmd.AddCommand(driverAddCmd)
	driverCmd.AddCommand(driverListCmd)
	rootCmd.AddCommand(driverCmd)
}
