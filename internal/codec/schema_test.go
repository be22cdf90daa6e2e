package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSchema(t *testing.T) {
	data, err := ReportSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))

	assert.Equal(t, "array", schema["type"])

	items, ok := schema["items"].(map[string]any)
	require.True(t, ok)
	props, ok := items["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "source_row_id")
	assert.Contains(t, props, "issues")
	assert.Contains(t, props, "recommended_actions")
}
