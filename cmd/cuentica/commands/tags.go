package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewTagsCommand creates the tags command.
func NewTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags",
		Long:  "List all tags in use across the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			tags, err := client.Tags().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list tags: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return StandardJSONRenderer(tags)
			case OutputFormatYAML:
				return StandardYAMLRenderer(tags)
			default:
				if len(tags) == 0 {
					fmt.Println("No tags found")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Tag")

				for _, tag := range tags {
					_ = table.Append(tag)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			}
		},
	}
}
