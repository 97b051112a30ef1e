package cuentica_test

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magarcia/cuentica-sdk/pkg/cuentica"
)

func TestAttachment_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		attachment := cuentica.Attachment{
			Filename: "invoice.pdf",
			Content:  []byte("content"),
			MimeType: "application/pdf",
		}
		assert.NoError(t, attachment.Validate())
	})

	t.Run("missing filename", func(t *testing.T) {
		attachment := cuentica.Attachment{Content: []byte("content")}
		assert.Error(t, attachment.Validate())
	})

	t.Run("missing content", func(t *testing.T) {
		attachment := cuentica.Attachment{Filename: "invoice.pdf"}
		assert.Error(t, attachment.Validate())
	})
}

func TestAttachment_JSONBase64(t *testing.T) {
	content := []byte("raw file bytes")
	attachment := cuentica.Attachment{
		Filename: "note.pdf",
		Content:  content,
		MimeType: "application/pdf",
	}

	data, err := json.Marshal(attachment)
	require.NoError(t, err)

	var wire map[string]string

	require.NoError(t, json.Unmarshal(data, &wire))
	assert.Equal(t, base64.StdEncoding.EncodeToString(content), wire["content"])
}
