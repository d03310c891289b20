package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocumentCoversRoutes(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		BasePath    string                     `json:"basePath"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "/api", doc.BasePath)
	for _, p := range []string{
		"/forms", "/forms/{id}", "/forms/slug/{slug}", "/forms/{id}/publish",
		"/forms/{id}/responses", "/forms/{id}/qrcode",
		"/responses", "/responses/{id}", "/responses/form/{slug}", "/responses/analytics/{formId}",
	} {
		assert.Contains(t, doc.Paths, p)
	}
	assert.Contains(t, doc.Definitions, "models.SettingsPatch")
}
