package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// NewExpensesCommand creates the expenses command group.
func NewExpensesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expenses",
		Aliases: []string{"expense"},
		Short:   "Manage expenses",
		Long:    "List, inspect, and delete expenses",
	}

	cmd.AddCommand(newExpensesListCommand())
	cmd.AddCommand(newExpensesGetCommand())
	cmd.AddCommand(newExpensesDeleteCommand())

	return cmd
}

func newExpensesListCommand() *cobra.Command {
	var (
		tags     []string
		dateFrom string
		dateTo   string
		provider int
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			opts := &cuentica.ExpenseListOptions{
				DateFrom: dateFrom,
				DateTo:   dateTo,
				Provider: provider,
				Page:     page,
				PageSize: pageSize,
			}
			if cmd.Flags().Changed("tag") {
				opts.Tags = tags
			}

			expenses, err := client.Expenses().List(context.Background(), opts)
			if err != nil {
				return fmt.Errorf("failed to list expenses: %w", err)
			}

			return outputExpenses(expenses)
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "filter by tag (repeatable)")
	cmd.Flags().StringVar(&dateFrom, "from", "", "dated on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateTo, "to", "", "dated on or before (YYYY-MM-DD)")
	cmd.Flags().IntVar(&provider, "provider", 0, "filter by provider id")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")

	return cmd
}

func outputExpenses(expenses []cuentica.Expense) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(expenses)
	case OutputFormatYAML:
		return StandardYAMLRenderer(expenses)
	default:
		if len(expenses) == 0 {
			fmt.Println("No expenses found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Date", "Provider", "Document", "Total", "Tags")

		for _, expense := range expenses {
			_ = table.Append(
				fmt.Sprintf("%d", expense.ID),
				expense.Date,
				fmt.Sprintf("%d", expense.Provider),
				expense.DocumentNumber,
				expense.Total().StringFixed(2),
				strings.Join(expense.Tags, ", "),
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newExpensesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EXPENSE_ID",
		Short: "Get an expense",
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

			expense, err := client.Expenses().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get expense: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(expense)
			default:
				return StandardJSONRenderer(expense)
			}
		},
	}
}

func newExpensesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete EXPENSE_ID",
		Short: "Delete an expense",
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

			if err := client.Expenses().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}

			fmt.Printf("Expense %d deleted\n", id)

			return nil
		},
	}
}
