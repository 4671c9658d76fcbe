package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/bft-labs/ezladder/internal/domain"
	"github.com/bft-labs/ezladder/pkg/standoff"
)

// PolicyFile is the on-disk form of a standoff policy. Omitted range fields,
// an omitted epsilon or an empty bucket list keep the stock values.
// glyph_epsilon = 0 also selects the stock tolerance; it must stay below 1/16.
//
//	glyph_epsilon = 1e-6
//
//	[range]
//	min = 7.0
//	max = 15.375
//	step = 0.125
//
//	[[buckets]]
//	up_to = 11.0
//	sku = "SO2"
//	value = 9.0
type PolicyFile struct {
	Range        RangeFile    `toml:"range" yaml:"range"`
	GlyphEpsilon *float64     `toml:"glyph_epsilon" yaml:"glyph_epsilon"`
	Buckets      []BucketFile `toml:"buckets" yaml:"buckets"`
}

// RangeFile is the [range] table of a policy file.
type RangeFile struct {
	Min  *float64 `toml:"min" yaml:"min"`
	Max  *float64 `toml:"max" yaml:"max"`
	Step *float64 `toml:"step" yaml:"step"`
}

// BucketFile is one [[buckets]] entry of a policy file.
type BucketFile struct {
	UpTo  float64 `toml:"up_to" yaml:"up_to"`
	SKU   string  `toml:"sku" yaml:"sku"`
	Value float64 `toml:"value" yaml:"value"`
}

// Policy merges the file over the stock policy.
func (pf PolicyFile) Policy() standoff.Policy {
	p := standoff.DefaultPolicy()
	if pf.Range.Min != nil {
		p.Range.Min = *pf.Range.Min
	}
	if pf.Range.Max != nil {
		p.Range.Max = *pf.Range.Max
	}
	if pf.Range.Step != nil {
		p.Range.Step = *pf.Range.Step
	}
	if pf.GlyphEpsilon != nil {
		p.GlyphEpsilon = *pf.GlyphEpsilon
	}
	if len(pf.Buckets) > 0 {
		p.Catalog = make(standoff.Catalog, 0, len(pf.Buckets))
		for _, b := range pf.Buckets {
			p.Catalog = append(p.Catalog, standoff.Bucket{UpTo: b.UpTo, SKU: b.SKU, ValueInches: b.Value})
		}
	}
	return p
}

// PolicyFileFrom converts a policy into its fully populated file form.
func PolicyFileFrom(p standoff.Policy) PolicyFile {
	lo, hi, step, eps := p.Range.Min, p.Range.Max, p.Range.Step, p.GlyphEpsilon
	pf := PolicyFile{
		Range:        RangeFile{Min: &lo, Max: &hi, Step: &step},
		GlyphEpsilon: &eps,
		Buckets:      make([]BucketFile, 0, len(p.Catalog)),
	}
	for _, b := range p.Catalog {
		pf.Buckets = append(pf.Buckets, BucketFile{UpTo: b.UpTo, SKU: b.SKU, Value: b.ValueInches})
	}
	return pf
}

// DecodePolicy parses policy data in the format named by ext (".toml",
// ".yaml" or ".yml") and validates the result.
func DecodePolicy(data []byte, ext string) (standoff.Policy, error) {
	var pf PolicyFile
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &pf); err != nil {
			return standoff.Policy{}, fmt.Errorf("decode toml policy: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return standoff.Policy{}, fmt.Errorf("decode yaml policy: %w", err)
		}
	default:
		return standoff.Policy{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedPolicyFile, ext)
	}

	p := pf.Policy()
	if err := p.Validate(); err != nil {
		return standoff.Policy{}, err
	}
	return p, nil
}

// LoadPolicy reads a policy file. An empty path yields the stock policy.
func LoadPolicy(path string) (standoff.Policy, error) {
	if path == "" {
		return standoff.DefaultPolicy(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return standoff.Policy{}, fmt.Errorf("read policy: %w", err)
	}
	p, err := DecodePolicy(b, filepath.Ext(path))
	if err != nil {
		return standoff.Policy{}, fmt.Errorf("policy %s: %w", path, err)
	}
	return p, nil
}

// EncodePolicyTOML renders a policy as a TOML policy file.
func EncodePolicyTOML(p standoff.Policy) ([]byte, error) {
	return toml.Marshal(PolicyFileFrom(p))
}
