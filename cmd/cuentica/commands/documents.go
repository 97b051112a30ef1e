package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/magarcia/cuentica-sdk/internal/constants"
	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// NewDocumentsCommand creates the documents command group.
func NewDocumentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "documents",
		Aliases: []string{"document", "docs"},
		Short:   "Manage documents",
		Long:    "List, inspect, upload, and delete standalone documents",
	}

	cmd.AddCommand(newDocumentsListCommand())
	cmd.AddCommand(newDocumentsGetCommand())
	cmd.AddCommand(newDocumentsUploadCommand())
	cmd.AddCommand(newDocumentsDeleteCommand())

	return cmd
}

func newDocumentsListCommand() *cobra.Command {
	var (
		dateFrom     string
		dateTo       string
		provider     int
		documentType string
		page         int
		pageSize     int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			documents, err := client.Documents().List(context.Background(), &cuentica.DocumentListOptions{
				DateFrom:     dateFrom,
				DateTo:       dateTo,
				Provider:     provider,
				DocumentType: documentType,
				Page:         page,
				PageSize:     pageSize,
			})
			if err != nil {
				return fmt.Errorf("failed to list documents: %w", err)
			}

			return outputDocuments(documents)
		},
	}

	cmd.Flags().StringVar(&dateFrom, "from", "", "dated on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateTo, "to", "", "dated on or before (YYYY-MM-DD)")
	cmd.Flags().IntVar(&provider, "provider", 0, "filter by provider id")
	cmd.Flags().StringVar(&documentType, "type", "", "filter by document type")
	cmd.Flags().IntVar(&page, "page", 0, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "results per page")

	return cmd
}

func outputDocuments(documents []cuentica.Document) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(documents)
	case OutputFormatYAML:
		return StandardYAMLRenderer(documents)
	default:
		if len(documents) == 0 {
			fmt.Println("No documents found")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Date", "Type", "Description", "Tags")

		for _, document := range documents {
			_ = table.Append(
				fmt.Sprintf("%d", document.ID),
				document.Date,
				document.DocumentType,
				document.Description,
				strings.Join(document.Tags, ", "),
			)
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	}
}

func newDocumentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOCUMENT_ID",
		Short: "Get a document",
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

			document, err := client.Documents().Get(context.Background(), id)
			if err != nil {
				return fmt.Errorf("failed to get document: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatYAML:
				return StandardYAMLRenderer(document)
			default:
				return StandardJSONRenderer(document)
			}
		},
	}
}

func newDocumentsUploadCommand() *cobra.Command {
	var (
		date         string
		provider     int
		documentType string
		description  string
		mimeType     string
	)

	cmd := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a document",
		Long:  "Create a document whose file content travels base64-embedded in the request body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Clean(args[0])
			if strings.Contains(path, "..") {
				return constants.ErrDirectoryTraversalDetected
			}

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("inspecting file: %w", err)
			}

			if !info.Mode().IsRegular() {
				return constants.ErrNotRegularFile
			}

			content, err := os.ReadFile(path) // #nosec G304 -- path is cleaned and checked above
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			document, err := client.Documents().Create(context.Background(), &cuentica.DocumentRequest{
				Date:         date,
				Provider:     provider,
				DocumentType: documentType,
				Description:  description,
				Attachment: &cuentica.Attachment{
					Filename: filepath.Base(path),
					Content:  content,
					MimeType: mimeType,
				},
			})
			if err != nil {
				return fmt.Errorf("failed to upload document: %w", err)
			}

			fmt.Printf("Document %d created\n", document.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "document date (YYYY-MM-DD, required)")
	cmd.Flags().IntVar(&provider, "provider", 0, "associated provider id")
	cmd.Flags().StringVar(&documentType, "type", "", "document type")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&mimeType, "mime-type", "", "MIME type of the file")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newDocumentsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DOCUMENT_ID",
		Short: "Delete a document",
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

			if err := client.Documents().Delete(context.Background(), id); err != nil {
				return fmt.Errorf("failed to delete document: %w", err)
			}

			fmt.Printf("Document %d deleted\n", id)

			return nil
		},
	}
}
