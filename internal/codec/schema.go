package codec

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"assetnorm/internal/domain"
)

// ReportSchema returns the JSON Schema of the JSON anomaly report
func ReportSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	entry := reflector.Reflect(&domain.AnomalyEntry{})
	entry.Version = ""

	schema := &jsonschema.Schema{
		Version: jsonschema.Version,
		Title:   "Inventory anomaly report",
		Type:    "array",
		Items:   entry,
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	return append(data, '\n'), nil
}
