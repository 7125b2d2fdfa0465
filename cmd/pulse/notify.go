package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Read notifications",
}

var notifyListCmd = &cobra.Command{
	Use:   "list [user-id]",
	Short: "List notifications for a user",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		userID := ""
		if len(args) > 0 {
			userID = args[0]
		} else {
			userID = actor()
		}
		unreadOnly, _ := cmd.Flags().GetBool("unread")

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		notifications, err := repos.Notify.GetByUser(cmdContext(cmd), userID)
		if err != nil {
			FatalError("%v", err)
		}
		if unreadOnly {
			filtered := notifications[:0]
			for _, n := range notifications {
				if !n.IsRead {
					filtered = append(filtered, n)
				}
			}
			notifications = filtered
		}
		if jsonOutput() {
			printJSON(notifications)
			return
		}
		if len(notifications) == 0 {
			fmt.Println("No notifications.")
			return
		}
		for _, n := range notifications {
			marker := "•"
			if n.IsRead {
				marker = " "
			}
			fmt.Printf("%s %-20s %s: %s\n", marker, n.ID, n.Title, n.Message)
		}
	},
}

var notifyReadCmd = &cobra.Command{
	Use:   "read [id]",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		if err := repos.Notify.MarkRead(cmdContext(cmd), args[0]); err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("Marked %s read\n", args[0])
	},
}

func init() {
	notifyListCmd.Flags().Bool("unread", false, "only unread notifications")

	notifyCmd.AddCommand(notifyListCmd)
	notifyCmd.AddCommand(notifyReadCmd)
	rootCmd.AddCommand(notifyCmd)
}
