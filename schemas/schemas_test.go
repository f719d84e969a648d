package schemas

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/outfit-planner/internal/inventory"
	"github.com/jonathan/outfit-planner/internal/pipeline"
	"github.com/jonathan/outfit-planner/internal/schemas"
	"github.com/jonathan/outfit-planner/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"wardrobe.schema.json",
	"recommendations.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]
			assert.True(t, hasSchema && hasProps, "schema should declare $schema and properties")
		})
	}
}

func TestWardrobeSchema_SampleWardrobe(t *testing.T) {
	doc := types.WardrobeFile{Items: inventory.SampleWardrobe().Items()}

	assert.NoError(t, schemas.ValidateDocument("wardrobe.schema.json", doc))
}

func TestWardrobeSchema_RejectsBadItem(t *testing.T) {
	data, err := os.ReadFile("wardrobe.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(data),
		`{"items": [{"id": 1, "name": "Tee", "category": "hats", "color": "white", "formality": 11}]}`)
	require.Error(t, err)

	validationErr, ok := err.(*schemas.ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Len(t, validationErr.Errors, 2)
}

func TestRecommendationsSchema_EngineOutput(t *testing.T) {
	engine, err := pipeline.NewEngine(pipeline.Options{})
	require.NoError(t, err)

	set, err := engine.Recommend(context.Background(), inventory.SampleWardrobe().Snapshot(), types.Query{
		Weather:     types.WeatherCool,
		Occasion:    types.OccasionBusiness,
		Preferences: &types.Preferences{PreferredColors: []string{"navy"}},
		MaxResults:  10,
	}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, set.Recommendations)

	assert.NoError(t, schemas.ValidateDocument("recommendations.schema.json", set))
}
