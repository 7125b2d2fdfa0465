package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/ids"
	"github.com/CharansaiParvathala/saibalaji-project-pulse-23953396-sub000/internal/types"
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Raise and review payment requests",
}

var paymentRequestCmd = &cobra.Command{
	Use:   "request [project-id]",
	Short: "Raise a payment request against a project",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		amount, _ := cmd.Flags().GetFloat64("amount")
		description, _ := cmd.Flags().GetString("description")
		purposeStrs, _ := cmd.Flags().GetStringSlice("purpose")
		entryID, _ := cmd.Flags().GetString("entry")

		purposes := make([]types.PaymentPurpose, 0, len(purposeStrs))
		for _, p := range purposeStrs {
			purposes = append(purposes, types.PaymentPurpose(p))
		}

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		ctx := cmdContext(cmd)
		saved, err := repos.Payments.Save(ctx, types.PaymentRequest{
			ID:          ids.New(),
			ProjectID:   args[0],
			Amount:      amount,
			Description: description,
			Purposes:    purposes,
			Status:      types.PaymentPending,
			RequestedBy: actor(),
			RequestedAt: time.Now(),
		})
		if err != nil {
			FatalError("%v", err)
		}

		// Keep the progress entry's back-reference list consistent.
		if entryID != "" {
			if _, err := repos.Progress.AttachPaymentRequest(ctx, entryID, saved.ID); err != nil {
				FatalError("request %s created, but attaching to entry failed: %v", saved.ID, err)
			}
		}

		if jsonOutput() {
			printJSON(saved)
			return
		}
		fmt.Printf("Raised payment request %s for ₹%.2f (%s)\n", saved.ID, saved.Amount, saved.Status)
	},
}

var paymentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payment requests",
	Run: func(cmd *cobra.Command, args []string) {
		projectID, _ := cmd.Flags().GetString("project")

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		ctx := cmdContext(cmd)
		var requests []types.PaymentRequest
		var err error
		if projectID != "" {
			requests, err = repos.Payments.GetByProject(ctx, projectID)
		} else {
			requests, err = repos.Payments.GetAll(ctx)
		}
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(requests)
			return
		}
		if len(requests) == 0 {
			fmt.Println("No payment requests.")
			return
		}
		for _, r := range requests {
			fmt.Printf("%-20s %-10s ₹%10.2f  by %s\n", r.ID, r.Status, r.Amount, r.RequestedBy)
		}
	},
}

var paymentShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a payment request and its status history",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		req, err := repos.Payments.GetByID(cmdContext(cmd), args[0])
		if err != nil {
			FatalError("%v", err)
		}
		if jsonOutput() {
			printJSON(req)
			return
		}
		fmt.Printf("Payment request %s\n", req.ID)
		fmt.Printf("  Project:   %s\n", req.ProjectID)
		fmt.Printf("  Amount:    ₹%.2f\n", req.Amount)
		fmt.Printf("  Status:    %s\n", req.Status)
		fmt.Printf("  Requested: %s by %s\n", req.RequestedAt.Format("2006-01-02 15:04"), req.RequestedBy)
		if req.Description != "" {
			fmt.Printf("  Purpose:   %s\n", req.Description)
		}
		fmt.Println("  History:")
		for _, h := range req.StatusHistory {
			line := fmt.Sprintf("    %s  %-10s by %s", h.ChangedAt.Format("2006-01-02 15:04"), h.Status, h.ChangedBy)
			if h.Comments != "" {
				line += fmt.Sprintf(" — %s", h.Comments)
			}
			fmt.Println(line)
		}
	},
}

var paymentApproveCmd = &cobra.Command{
	Use:   "approve [id]",
	Short: "Approve a pending payment request",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		comments, _ := cmd.Flags().GetString("comments")

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		req, err := repos.Payments.Approve(cmdContext(cmd), args[0], actor(), comments)
		if err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("Payment request %s approved\n", req.ID)
	},
}

var paymentRejectCmd = &cobra.Command{
	Use:   "reject [id]",
	Short: "Reject a pending payment request",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		comments, _ := cmd.Flags().GetString("comments")

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		req, err := repos.Payments.Reject(cmdContext(cmd), args[0], actor(), comments)
		if err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("Payment request %s rejected\n", req.ID)
	},
}

var paymentScheduleCmd = &cobra.Command{
	Use:   "schedule [id] [date]",
	Short: "Schedule an approved request for payment on a date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		date, err := time.Parse("2006-01-02", args[1])
		if err != nil {
			FatalError("invalid date %q (expected YYYY-MM-DD)", args[1])
		}

		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		req, err := repos.Payments.Schedule(cmdContext(cmd), args[0], actor(), date)
		if err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("Payment request %s scheduled for %s\n", req.ID, date.Format("2006-01-02"))
	},
}

var paymentConfirmCmd = &cobra.Command{
	Use:   "confirm [id]",
	Short: "Confirm an approved or scheduled request as paid",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repos, store := openRepos()
		defer func() { _ = store.Close() }()

		req, err := repos.Payments.ConfirmPaid(cmdContext(cmd), args[0], actor())
		if err != nil {
			FatalError("%v", err)
		}
		fmt.Printf("Payment request %s marked paid\n", req.ID)
	},
}

func init() {
	paymentRequestCmd.Flags().Float64("amount", 0, "amount in rupees")
	paymentRequestCmd.Flags().String("description", "", "what the payment is for")
	paymentRequestCmd.Flags().StringSlice("purpose", nil, "purpose tags: food|fuel|labour|vehicle|material|water|other")
	paymentRequestCmd.Flags().String("entry", "", "progress entry id to attach this request to")

	paymentApproveCmd.Flags().String("comments", "", "review comments")
	paymentRejectCmd.Flags().String("comments", "", "review comments")

	paymentCmd.AddCommand(paymentRequestCmd)
	paymentCmd.AddCommand(paymentListCmd)
	paymentCmd.AddCommand(paymentShowCmd)
	paymentCmd.AddCommand(paymentApproveCmd)
	paymentCmd.AddCommand(paymentRejectCmd)
	paymentCmd.AddCommand(paymentScheduleCmd)
	paymentCmd.AddCommand(paymentConfirmCmd)
	rootCmd.AddCommand(paymentCmd)
}
