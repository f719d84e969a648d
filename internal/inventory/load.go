package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/outfit-planner/internal/types"
)

// Format is the encoding of a wardrobe file.
type Format string

// Supported wardrobe file formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from the file extension. Unknown extensions are treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadWardrobe loads a wardrobe from a JSON or YAML file.
func LoadWardrobe(path string) (*Wardrobe, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return ParseWardrobe(content, FormatFor(path))
}

// ParseWardrobe decodes wardrobe content in the given format.
func ParseWardrobe(content []byte, format Format) (*Wardrobe, error) {
	var file types.WardrobeFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &file); err != nil {
			return nil, &LoadError{Message: "failed to unmarshal YAML", Cause: err}
		}
	default:
		if err := json.Unmarshal(content, &file); err != nil {
			return nil, &LoadError{Message: "failed to unmarshal JSON", Cause: err}
		}
	}

	w, err := FromItems(file.Items)
	if err != nil {
		return nil, &LoadError{Message: "invalid wardrobe", Cause: err}
	}
	return w, nil
}

// WriteWardrobe writes the wardrobe's items to path, choosing the encoding from the extension.
func WriteWardrobe(path string, w *Wardrobe) error {
	file := types.WardrobeFile{Items: w.Items()}

	var (
		content []byte
		err     error
	)
	switch FormatFor(path) {
	case FormatYAML:
		content, err = yaml.Marshal(file)
	default:
		content, err = json.MarshalIndent(file, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode wardrobe: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write wardrobe file: %w", err)
	}
	return nil
}
