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

// NewProvidersCommand creates the providers command group.
func NewProvidersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "providers",
		Aliases: []string{"provider"},
		Short:   "Manage providers",
		Long:    "List, inspect, and delete providers",
	}

	cmd.AddCommand(newProvidersListCommand())
	cmd.AddCommand(newProvidersGetCommand())
	cmd.AddCommand(newProvidersDeleteCommand())

	return cmd
}

func newProvidersListCommand() *cobra.Command {
	var (
		query    string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List providers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			providers, err := client.Providers().List(context.Background(), &cuentica.ProviderListOptions{
				Q:        query,
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return fmt.Errorf("failed to list providers: %w", err)
			}

			return outputProviders(providers)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search term")
	cmd.Flags().IntVar(&page, "page", 0, "page number (default 1)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page (default 100)")

	return cmd
}

func outputProviders(providers []cuentica.Provider) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(providers)
	case OutputFormatYAML:
		return StandardYAMLRenderer(providers)
	default:
		if len(providers) == 0 {
			fmt.Println("No providers found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "CIF", "Name", "Email", "Tags")

		for _, provider := range providers {
			name := provider.TradeName
			if name == "" {
				name = provider.BusinessName
			}

			_ = table.Append(
				fmt.Sprintf("%d", provider.ID),
				provider.CIF,
				name,
				provider.Email,
				strings.Join(provider.Tags, ", "),
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newProvidersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROVIDER_ID",
		Short: "Get a provider",
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

			provider, err := client.Providers().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get provider: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(provider)
			default:
				return StandardJSONRenderer(provider)
			}
		},
	}
}

func newProvidersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PROVIDER_ID",
		Short: "Delete a provider",
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

			if err := client.Providers().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete provider: %w", err)
			}

			fmt.Printf("Provider %d deleted\n", id)

			return nil
		},
	}
}
