// Package reference issues human-readable transaction references of the form
// PREFIX-OUTLET-YYYYMMDD-HHMMSS-RAND, e.g. LC-PST-20250720-103000-K3F9QZ.
//
// A reference is a customer-facing correlation token embedded in QR URLs.
// It is not unique and must never be used as a primary key.
package reference

import (
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

// DefaultOutletCode is used when no outlet code is configured.
const DefaultOutletCode = "LC-PST"

// SuffixLength is the number of random characters at the end of a reference.
const SuffixLength = 6

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ErrInvalidReference is returned by Parse for malformed references.
var ErrInvalidReference = errors.New("invalid reference")

var (
	outletPattern    = regexp.MustCompile(`^[A-Z0-9]+-[A-Z0-9]+$`)
	referencePattern = regexp.MustCompile(`^([A-Z0-9]+-[A-Z0-9]+)-(\d{8}-\d{6})-([A-Z0-9]{6})$`)
)

// Generator creates references for one outlet.
type Generator struct {
	outlet string
	now    func() time.Time
	intn   func(n int) int
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRandom overrides the source used for the random suffix.
func WithRandom(intn func(n int) int) Option {
	return func(g *Generator) { g.intn = intn }
}

// NewGenerator returns a generator for the given PREFIX-OUTLET code.
func NewGenerator(outletCode string, opts ...Option) (*Generator, error) {
	if outletCode == "" {
		outletCode = DefaultOutletCode
	}
	outletCode = strings.ToUpper(outletCode)
	if !outletPattern.MatchString(outletCode) {
		return nil, fmt.Errorf("outlet code %q must look like PREFIX-OUTLET", outletCode)
	}

	g := &Generator{
		outlet: outletCode,
		now:    time.Now,
		intn:   rand.Intn,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate returns a new reference stamped with the local wall-clock time.
func (g *Generator) Generate() string {
	suffix := make([]byte, SuffixLength)
	for i := range suffix {
		suffix[i] = alphabet[g.intn(len(alphabet))]
	}
	return fmt.Sprintf("%s-%s-%s", g.outlet, g.now().Local().Format("20060102-150405"), suffix)
}

// Reference is a parsed reference.
type Reference struct {
	Outlet   string
	IssuedAt time.Time
	Suffix   string
}

// Parse validates ref and splits it into its parts. The timestamp is
// interpreted in the local time zone.
func Parse(ref string) (Reference, error) {
	m := referencePattern.FindStringSubmatch(ref)
	if m == nil {
		return Reference{}, ErrInvalidReference
	}

	issuedAt, err := time.ParseInLocation("20060102-150405", m[2], time.Local)
	if err != nil {
		return Reference{}, fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}

	return Reference{Outlet: m[1], IssuedAt: issuedAt, Suffix: m[3]}, nil
}
