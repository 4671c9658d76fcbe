// Package render writes derived configurator values for people (text) and
// programs (json).
package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/bft-labs/ezladder/internal/domain"
	"github.com/bft-labs/ezladder/pkg/configurator"
)

// Func writes one set of derived values to w.
type Func func(w io.Writer, d configurator.Derived) error

var renderers = map[string]Func{
	"text": Text,
	"json": JSON,
}

// Lookup returns the renderer registered for format.
func Lookup(format string) (Func, error) {
	fn, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", domain.ErrUnknownFormat, format, Names())
	}
	return fn, nil
}

// Names lists the registered formats in sorted order.
func Names() []string {
	out := make([]string, 0, len(renderers))
	for name := range renderers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
