package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/ids"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

var vehicleCmd = &cobra.Command{
	Use:   "vehicle",
	Short: "Manage vehicles and machinery",
}

var vehicleAddCmd = &cobra.Command{
	Use:   "add [model]",
	Short: "Add a vehicle",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		typeStr, _ := cmd.Flags().GetString("type")
		reg, _ := cmd.Flags().GetString("registration")

		vehicleType := types.VehicleType(typeStr)
		if !vehicleType.IsValid() {
			FatalError("invalid vehicle type %q", typeStr)
		}

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		saved, err := repos.Vehicles.Save(cmdContext(cmd), types.Vehicle{
			ID:                 ids.New(),
			Model:              args[0],
			RegistrationNumber: reg,
			Type:               vehicleType,
			CreatedAt:          time.Now(),
		})
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(saved)
			return
		}
		fmt.Printf("Added %s %s (%s)\n", saved.Type, saved.Model, saved.ID)
	},
}

var vehicleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vehicles",
	Run: func(cmd *cobra.Command, args []string) {
		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		vehicles, err := repos.Vehicles.GetAll(cmdContext(cmd))
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(vehicles)
			return
		}
		for _, v := range vehicles {
			fmt.Printf("%-20s %-8s %-12s %s\n", v.ID, v.Type, v.RegistrationNumber, v.Model)
		}
	},
}

func init() {
	vehicleAddCmd.Flags().String("type", string(types.VehicleTruck), "type: truck|tractor|jcb|roller|other")
	vehicleAddCmd.Flags().String("registration", "", "registration number")

	vehicleCmd.AddCommand(vehicleAddCmd)
	vehicleCmd.AddCommand(vehicleListCmd)
	rootCmd.AddCommand(vehicleCmd)
}
