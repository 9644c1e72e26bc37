// Package export renders a snapshot for non-interactive consumers.
package export

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/prabalesh/procview/internal/models"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Valid reports whether format is a supported output format.
func Valid(format string) bool {
	return format == FormatJSON || format == FormatYAML
}

// Write encodes stats to w in the given format.
func Write(w io.Writer, format string, stats models.SystemStats) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(stats), "encoding json snapshot")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(stats); err != nil {
			return errors.Wrap(err, "encoding yaml snapshot")
		}
		return errors.Wrap(enc.Close(), "flushing yaml snapshot")
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}
