package client

import (
	"context"
	"fmt"

	"github.com/magarcia/cuentica-sdk/internal/http"
	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

// DocumentsClient implements cuentica.DocumentsClient
type DocumentsClient struct {
	httpClient *http.Client
}

// NewDocumentsClient creates a new documents client
func NewDocumentsClient(httpClient *http.Client) *DocumentsClient {
	return &DocumentsClient{httpClient: httpClient}
}

// List implements cuentica.DocumentsClient.List. Set filters pass through
// verbatim, in declaration order.
func (c *DocumentsClient) List(ctx context.Context, opts *cuentica.DocumentListOptions) ([]cuentica.Document, error) {
	query := cuentica.NewParams()

	if opts != nil {
		if opts.DateFrom != "" {
			query.Add("date_from", opts.DateFrom)
		}

		if opts.DateTo != "" {
			query.Add("date_to", opts.DateTo)
		}

		if opts.Provider > 0 {
			query.AddInt("provider", opts.Provider)
		}

		if opts.DocumentType != "" {
			query.Add("document_type", opts.DocumentType)
		}

		if opts.Page > 0 {
			query.AddInt("page", opts.Page)
		}

		if opts.PageSize > 0 {
			query.AddInt("page_size", opts.PageSize)
		}
	}

	resp, err := c.httpClient.Get(ctx, "/document", query)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	var documents []cuentica.Document
	if err := resp.DecodeJSON(&documents); err != nil {
		return nil, fmt.Errorf("parsing documents list response: %w", err)
	}

	return documents, nil
}

// Get implements cuentica.DocumentsClient.Get
func (c *DocumentsClient) Get(ctx context.Context, id int) (*cuentica.Document, error) {
	path := fmt.Sprintf("/document/%d", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting document: %w", err)
	}

	var document cuentica.Document
	if err := resp.DecodeJSON(&document); err != nil {
		return nil, fmt.Errorf("parsing document response: %w", err)
	}

	return &document, nil
}

// Create implements cuentica.DocumentsClient.Create. The attachment, when
// present, is validated before the request goes out; its content travels
// base64-embedded in the JSON body, not as a multipart upload.
func (c *DocumentsClient) Create(ctx context.Context, request *cuentica.DocumentRequest) (*cuentica.Document, error) {
	if request != nil && request.Attachment != nil {
		if err := request.Attachment.Validate(); err != nil {
			return nil, fmt.Errorf("validating attachment: %w", err)
		}
	}

	resp, err := c.httpClient.Post(ctx, "/document", request)
	if err != nil {
		return nil, fmt.Errorf("creating document: %w", err)
	}

	var document cuentica.Document
	if err := resp.DecodeJSON(&document); err != nil {
		return nil, fmt.Errorf("parsing document response: %w", err)
	}

	return &document, nil
}

// Update implements cuentica.DocumentsClient.Update
func (c *DocumentsClient) Update(ctx context.Context, id int, request *cuentica.DocumentRequest) (*cuentica.Document, error) {
	if request != nil && request.Attachment != nil {
		if err := request.Attachment.Validate(); err != nil {
			return nil, fmt.Errorf("validating attachment: %w", err)
		}
	}

	path := fmt.Sprintf("/document/%d", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating document: %w", err)
	}

	var document cuentica.Document
	if err := resp.DecodeJSON(&document); err != nil {
		return nil, fmt.Errorf("parsing document response: %w", err)
	}

	return &document, nil
}

// Delete implements cuentica.DocumentsClient.Delete
func (c *DocumentsClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("/document/%d", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}

	return nil
}
