package standoff

import (
	"fmt"

	"github.com/bft-labs/ezladder/pkg/measure"
)

// Policy bundles the configurable knobs: the selectable range, the bucket
// catalog and the tolerance used to match fraction glyphs. A zero
// GlyphEpsilon means measure.DefaultEpsilon.
type Policy struct {
	Range        Range   `json:"range"`
	Catalog      Catalog `json:"buckets"`
	GlyphEpsilon float64 `json:"glyphEpsilon"`
}

// DefaultPolicy returns the stock range, catalog and glyph tolerance.
func DefaultPolicy() Policy {
	return Policy{
		Range:        DefaultRange(),
		Catalog:      DefaultCatalog(),
		GlyphEpsilon: measure.DefaultEpsilon,
	}
}

// MaxGlyphEpsilon bounds the glyph tolerance. At half an eighth or more a
// fraction would match its neighbor's glyph.
const MaxGlyphEpsilon = 1.0 / 16

// Validate checks the range, the catalog and the glyph tolerance.
func (p Policy) Validate() error {
	if err := p.Range.Validate(); err != nil {
		return err
	}
	if err := p.Catalog.Validate(); err != nil {
		return err
	}
	if !isFinite(p.GlyphEpsilon) || p.GlyphEpsilon < 0 || p.GlyphEpsilon >= MaxGlyphEpsilon {
		return fmt.Errorf("%w: glyph epsilon %v must be in [0, %v)", ErrInvalidPolicy, p.GlyphEpsilon, MaxGlyphEpsilon)
	}
	return nil
}

// Formatter returns a length formatter using the policy's glyph tolerance.
func (p Policy) Formatter() measure.Formatter {
	return measure.NewFormatter(p.GlyphEpsilon)
}

// Select snaps the requested distance to the range step, clamps it into the
// range and resolves the result.
func (p Policy) Select(inches float64) (float64, Part) {
	selected := p.Range.Snap(inches)
	return selected, p.Catalog.Resolve(selected)
}
