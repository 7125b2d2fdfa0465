package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/ids"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage application users",
}

var userAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		roleStr, _ := cmd.Flags().GetString("role")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")

		user := types.User{
			ID:        ids.New(),
			Name:      args[0],
			Email:     email,
			Phone:     phone,
			Role:      types.UserRole(roleStr),
			CreatedAt: time.Now(),
		}
		if err := user.Validate(); err != nil {
			FatalError("%v", err)
		}

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		saved, err := repos.Users.Save(cmdContext(cmd), user)
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(saved)
			return
		}
		fmt.Printf("Added %s %s (%s)\n", saved.Role, saved.Name, saved.ID)
	},
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Run: func(cmd *cobra.Command, args []string) {
		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		users, err := repos.Users.GetAll(cmdContext(cmd))
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(users)
			return
		}
		for _, u := range users {
			fmt.Printf("%-20s %-8s %s\n", u.ID, u.Role, u.Name)
		}
	},
}

func init() {
	userAddCmd.Flags().String("role", string(types.RoleLeader), "role: admin|leader|checker|owner")
	userAddCmd.Flags().String("email", "", "email address")
	userAddCmd.Flags().String("phone", "", "phone number")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	rootCmd.AddCommand(userCmd)
}
