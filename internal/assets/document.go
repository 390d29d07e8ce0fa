// Package assets loads the symbol catalog: it fetches and validates the
// catalog document, decodes or draws every image and exposes the result
// through a Gate that the loading screen waits on.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a catalog document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user supplied name ("json", "yaml", "yml") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("assets: unknown catalog format %q", s)
	}
}

// Document is the catalog source document. Order matters: the first
// PlayableCount entries are the playable symbols and the entry at
// BackgroundIndex is the game background.
type Document struct {
	Images []ImageSpec `json:"images" yaml:"images" validate:"min=6,dive"`
}

// ImageSpec describes one named image. Either Path (an encoded image) or
// Shape (drawn procedurally) must be set.
type ImageSpec struct {
	Name  string `json:"name" yaml:"name" validate:"required"`
	Path  string `json:"path,omitempty" yaml:"path,omitempty" validate:"required_without=Shape"`
	Shape string `json:"shape,omitempty" yaml:"shape,omitempty" validate:"omitempty,oneof=circle ellipse diamond square triangle star seven bell cherry bar arrow button panel"`
	Color string `json:"color,omitempty" yaml:"color,omitempty" validate:"omitempty,hexcolor"`
	Glyph string `json:"glyph,omitempty" yaml:"glyph,omitempty" validate:"omitempty,max=4"`
	W     int    `json:"w,omitempty" yaml:"w,omitempty" validate:"omitempty,min=1,max=1024"`
	H     int    `json:"h,omitempty" yaml:"h,omitempty" validate:"omitempty,min=1,max=1024"`
}

// ErrDuplicateName is returned when two catalog entries share a name.
var ErrDuplicateName = errors.New("assets: duplicate image name")

var validate = validator.New()

// DetectFormat guesses the document format from the location extension,
// falling back to sniffing the first non-blank byte.
func DetectFormat(loc string, data []byte) Format {
	switch strings.ToLower(path.Ext(loc)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}
	return FormatYAML
}

// ParseDocument decodes and validates a catalog document.
func ParseDocument(data []byte, f Format) (Document, error) {
	var doc Document
	switch f {
	case FormatJSON:
		if err := jsoniter.Unmarshal(data, &doc); err != nil {
			return doc, fmt.Errorf("assets: parse json catalog: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return doc, fmt.Errorf("assets: parse yaml catalog: %w", err)
		}
	default:
		return doc, fmt.Errorf("assets: unknown catalog format %q", f)
	}

	if err := ValidateDocument(doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// ValidateDocument checks tags and name uniqueness.
func ValidateDocument(doc Document) error {
	if err := validate.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			e := verrs[0]
			return fmt.Errorf("assets: invalid catalog: %s failed %q", e.Namespace(), e.Tag())
		}
		return fmt.Errorf("assets: invalid catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Images))
	for _, img := range doc.Images {
		if _, dup := seen[img.Name]; dup {
			return fmt.Errorf("%w %q", ErrDuplicateName, img.Name)
		}
		seen[img.Name] = struct{}{}
	}
	return nil
}

// Marshal encodes the document in the given format.
func (d Document) Marshal(f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return jsoniter.MarshalIndent(d, "", "  ")
	case FormatYAML:
		return yaml.Marshal(d)
	default:
		return nil, fmt.Errorf("assets: unknown catalog format %q", f)
	}
}
