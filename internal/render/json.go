package render

import (
	"encoding/json"
	"io"

	"github.com/bft-labs/ezladder/pkg/configurator"
)

// JSON writes d as an indented JSON document.
func JSON(w io.Writer, d configurator.Derived) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}
