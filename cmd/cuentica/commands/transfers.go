package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// NewTransfersCommand creates the transfers command group.
func NewTransfersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transfers",
		Aliases: []string{"transfer"},
		Short:   "Manage transfers",
		Long:    "List, inspect, create, and delete transfers between accounts",
	}

	cmd.AddCommand(newTransfersListCommand())
	cmd.AddCommand(newTransfersGetCommand())
	cmd.AddCommand(newTransfersCreateCommand())
	cmd.AddCommand(newTransfersDeleteCommand())

	return cmd
}

func newTransfersListCommand() *cobra.Command {
	var (
		dateFrom    string
		dateTo      string
		origin      int
		destination int
		page        int
		pageSize    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transfers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			transfers, err := client.Transfers().List(context.Background(), &cuentica.TransferListOptions{
				DateFrom:           dateFrom,
				DateTo:             dateTo,
				OriginAccount:      origin,
				DestinationAccount: destination,
				Page:               page,
				PageSize:           pageSize,
			})
			if err != nil {
				return fmt.Errorf("failed to list transfers: %w", err)
			}

			return outputTransfers(transfers)
		},
	}

	cmd.Flags().StringVar(&dateFrom, "from", "", "dated on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateTo, "to", "", "dated on or before (YYYY-MM-DD)")
	cmd.Flags().IntVar(&origin, "origin", 0, "filter by origin account id")
	cmd.Flags().IntVar(&destination, "destination", 0, "filter by destination account id")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")

	return cmd
}

func outputTransfers(transfers []cuentica.Transfer) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(transfers)
	case OutputFormatYAML:
		return StandardYAMLRenderer(transfers)
	default:
		if len(transfers) == 0 {
			fmt.Println("No transfers found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Date", "Amount", "Origin", "Destination", "Concept")

		for _, transfer := range transfers {
			_ = table.Append(
				fmt.Sprintf("%d", transfer.ID),
				transfer.Date,
				FormatAmount(transfer.Amount),
				fmt.Sprintf("%d", transfer.OriginAccount),
				fmt.Sprintf("%d", transfer.DestinationAccount),
				transfer.Concept,
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newTransfersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TRANSFER_ID",
		Short: "Get a transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ParseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			transfer, err := client.Transfers().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get transfer: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(transfer)
			default:
				return StandardJSONRenderer(transfer)
			}
		},
	}
}

func newTransfersCreateCommand() *cobra.Command {
	var (
		date        string
		amount      float64
		concept     string
		origin      int
		destination int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a transfer",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			transfer, err := client.Transfers().Create(context.Background(), &cuentica.TransferRequest{
				Date:               date,
				Amount:             amount,
				Concept:            concept,
				OriginAccount:      origin,
				DestinationAccount: destination,
			})
			if err != nil {
				return fmt.Errorf("failed to create transfer: %w", err)
			}

			fmt.Printf("Transfer %d created\n", transfer.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transfer date (YYYY-MM-DD, required)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to move (required)")
	cmd.Flags().StringVar(&concept, "concept", "", "free-text concept")
	cmd.Flags().IntVar(&origin, "origin", 0, "origin account id (required)")
	cmd.Flags().IntVar(&destination, "destination", 0, "destination account id (required)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("origin")
	_ = cmd.MarkFlagRequired("destination")

	return cmd
}

func newTransfersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TRANSFER_ID",
		Short: "Delete a transfer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ParseID(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Transfers().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete transfer: %w", err)
			}

			fmt.Printf("Transfer %d deleted\n", id)

			return nil
		},
	}
}
