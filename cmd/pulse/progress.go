package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/ids"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Record and review daily field progress",
}

var progressAddCmd = &cobra.Command{
	Use:   "add [project-id]",
	Short: "Record a day of progress on a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		distance, _ := cmd.Flags().GetFloat64("distance")
		hours, _ := cmd.Flags().GetFloat64("hours")
		workers, _ := cmd.Flags().GetInt("workers")
		notes, _ := cmd.Flags().GetString("notes")
		submit, _ := cmd.Flags().GetBool("submit")

		status := types.EntryDraft
		if submit {
			status = types.EntrySubmitted
		}

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		saved, err := repos.Progress.Save(cmdContext(cmd), types.ProgressEntry{
			ID:                ids.New(),
			ProjectID:         args[0],
			Date:              time.Now(),
			DistanceCompleted: distance,
			TimeSpent:         hours,
			WorkersPresent:    workers,
			Notes:             notes,
			Status:            status,
			SubmittedBy:       actor(),
		})
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(saved)
			return
		}
		fmt.Printf("Recorded entry %s: %.0fm in %.1fh (%s)\n", saved.ID, saved.DistanceCompleted, saved.TimeSpent, saved.Status)
	},
}

var progressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List progress entries",
	Run: func(cmd *cobra.Command, args []string) {
		projectID, _ := cmd.Flags().GetString("project")

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		ctx := cmdContext(cmd)
		var entries []types.ProgressEntry
		var err error
		if projectID != "" {
			entries, err = repos.Progress.GetByProject(ctx, projectID)
		} else {
			entries, err = repos.Progress.GetAll(ctx)
		}
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(entries)
			return
		}
		if len(entries) == 0 {
			fmt.Println("No progress entries.")
			return
		}
		for _, e := range entries {
			lock := " "
			if e.IsLocked {
				lock = "L"
			}
			fmt.Printf("%-20s %s %-21s %8.0fm %5.1fh %3d workers  %s\n",
				e.ID, lock, e.Status, e.DistanceCompleted, e.TimeSpent, e.WorkersPresent, e.Date.Format("2006-01-02"))
		}
	},
}

var progressReviewCmd = &cobra.Command{
	Use:   "review [entry-id] [approve|reject|request-correction]",
	Short: "Record a checker decision on a submitted entry",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var decision types.EntryStatus
		switch args[1] {
		case "approve":
			decision = types.EntryApproved
		case "reject":
			decision = types.EntryRejected
		case "request-correction":
			decision = types.EntryCorrectionRequested
		default:
			FatalError("unknown decision %q (approve, reject or request-correction)", args[1])
		}

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		entry, err := repos.Progress.Review(cmdContext(cmd), args[0], decision, actor())
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(entry)
			return
		}
		if entry.IsLocked {
			fmt.Printf("Entry %s approved and locked\n", entry.ID)
			return
		}
		fmt.Printf("Entry %s is now %s\n", entry.ID, entry.Status)
	},
}

func init() {
	progressAddCmd.Flags().Float64("distance", 0, "distance completed in metres")
	progressAddCmd.Flags().Float64("hours", 0, "time spent in hours")
	progressAddCmd.Flags().Int("workers", 0, "workers present")
	progressAddCmd.Flags().String("notes", "", "free-form notes")
	progressAddCmd.Flags().Bool("submit", false, "submit for review instead of saving a draft")

	progressListCmd.Flags().String("project", "", "only entries for this project id")

	progressCmd.AddCommand(progressAddCmd)
	progressCmd.AddCommand(progressListCmd)
	progressCmd.AddCommand(progressReviewCmd)
	rootCmd.AddCommand(progressCmd)
}
