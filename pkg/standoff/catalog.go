package standoff

import (
	"fmt"

	"github.com/bft-labs/ezladder/internal/domain"
	"github.com/bft-labs/ezladder/pkg/measure"
)

// ErrInvalidPolicy is returned when a range or catalog fails validation.
var ErrInvalidPolicy = domain.ErrInvalidPolicy

// Part is a resolved catalog record: the SKU to order and the nominal
// standoff it provides.
type Part struct {
	SKU         string  `json:"sku"`
	ValueInches float64 `json:"valueInches"`
}

// Bucket maps every distance up to and including UpTo to a part.
type Bucket struct {
	UpTo        float64 `json:"upTo"`
	SKU         string  `json:"sku"`
	ValueInches float64 `json:"valueInches"`
}

// Part returns the bucket's catalog record.
func (b Bucket) Part() Part {
	return Part{SKU: b.SKU, ValueInches: b.ValueInches}
}

// Catalog is an ordered bucket table. Buckets are evaluated in order and the
// first whose UpTo is at or above the distance wins. The last bucket also
// catches every distance above its bound.
type Catalog []Bucket

// DefaultCatalog returns the stock two-bucket table.
func DefaultCatalog() Catalog {
	return Catalog{
		{UpTo: 11.0, SKU: "SO2", ValueInches: 9.0},
		{UpTo: 15.375, SKU: "SO3", ValueInches: 13.5},
	}
}

// Resolve resolves inches against the default catalog.
func Resolve(inches float64) Part {
	return DefaultCatalog().Resolve(inches)
}

// Resolve returns the part for inches. Non-finite input counts as zero.
// An empty catalog resolves to the zero Part.
func (c Catalog) Resolve(inches float64) Part {
	if len(c) == 0 {
		return Part{}
	}
	inches = measure.FiniteOrZero(inches)
	for _, b := range c {
		if inches <= b.UpTo {
			return b.Part()
		}
	}
	return c[len(c)-1].Part()
}

// SKUs returns the SKU of every bucket in order.
func (c Catalog) SKUs() []string {
	out := make([]string, 0, len(c))
	for _, b := range c {
		out = append(out, b.SKU)
	}
	return out
}

// Validate checks that the catalog is non-empty, every bucket names a SKU
// with a finite non-negative value, and bounds strictly ascend.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: catalog has no buckets", ErrInvalidPolicy)
	}
	for i, b := range c {
		if b.SKU == "" {
			return fmt.Errorf("%w: bucket %d has no sku", ErrInvalidPolicy, i)
		}
		if !isFinite(b.UpTo) {
			return fmt.Errorf("%w: bucket %s bound must be finite", ErrInvalidPolicy, b.SKU)
		}
		if !isFinite(b.ValueInches) || b.ValueInches < 0 {
			return fmt.Errorf("%w: bucket %s value %v must be finite and non-negative", ErrInvalidPolicy, b.SKU, b.ValueInches)
		}
		if i > 0 && b.UpTo <= c[i-1].UpTo {
			return fmt.Errorf("%w: bucket %s bound %v does not exceed %v", ErrInvalidPolicy, b.SKU, b.UpTo, c[i-1].UpTo)
		}
	}
	return nil
}
