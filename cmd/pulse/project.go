package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/ids"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage construction projects",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		workers, _ := cmd.Flags().GetInt("workers")
		distance, _ := cmd.Flags().GetFloat64("distance")

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		project := types.Project{
			ID:            ids.New(),
			Name:          args[0],
			NumWorkers:    workers,
			CreatedBy:     actor(),
			CreatedAt:     time.Now(),
			Status:        types.ProjectPlanning,
			TotalDistance: distance,
		}
		if err := project.Validate(); err != nil {
			FatalError("%v", err)
		}
		saved, err := repos.Projects.Save(cmdContext(cmd), project)
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(saved)
			return
		}
		fmt.Printf("Created project %s: %s\n", saved.ID, saved.Name)
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Run: func(cmd *cobra.Command, args []string) {
		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		projects, err := repos.Projects.GetAll(cmdContext(cmd))
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(projects)
			return
		}
		if len(projects) == 0 {
			fmt.Println("No projects.")
			return
		}
		for _, p := range projects {
			fmt.Printf("%-20s %-10s %4d workers  %s\n", p.ID, p.Status, p.NumWorkers, p.Name)
		}
	},
}

var projectStatusCmd = &cobra.Command{
	Use:   "status [id] [status]",
	Short: "Set a project's status (active|completed|on_hold|planning)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		status := types.ProjectStatus(args[1])
		if !status.IsValid() {
			FatalError("invalid project status %q", args[1])
		}

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		ctx := cmdContext(cmd)
		project, err := repos.Projects.GetByID(ctx, args[0])
		if err != nil {
			FatalError("%v", err)
		}
		project.Status = status
		if _, err := repos.Projects.Update(ctx, project); err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("Project %s is now %s\n", project.ID, status)
	},
}

func init() {
	projectCreateCmd.Flags().Int("workers", 0, "number of workers assigned")
	projectCreateCmd.Flags().Float64("distance", 0, "total road distance in metres")

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectStatusCmd)
	rootCmd.AddCommand(projectCmd)
}
