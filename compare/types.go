package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by Compare and Summarize.
var (
	// ErrNilGrid indicates a nil fine or coarse raster.
	ErrNilGrid = errors.New("compare: grid is nil")

	// ErrRatioMismatch indicates fine dimensions that are not a common
	// positive integer multiple of the coarse dimensions.
	ErrRatioMismatch = errors.New("compare: fine grid is not an integer multiple of coarse grid")

	// ErrPathOutOfBounds indicates a path endpoint outside the fine raster.
	ErrPathOutOfBounds = errors.New("compare: path endpoint outside fine grid")

	// ErrPathNotReached indicates a fine walk that never arrives at the origin.
	ErrPathNotReached = errors.New("compare: fine flow path does not reach path origin")

	// ErrNoScores indicates Summarize was called with no scores.
	ErrNoScores = errors.New("compare: no scores to summarize")

	// ErrWeightsLength indicates weights and scores of different length.
	ErrWeightsLength = errors.New("compare: weights and scores differ in length")
)

// Membership selects how the coarse start cell enters the membership set.
type Membership int

const (
	// CoarseCells stores every coarse cell, start included, once downscaled.
	CoarseCells Membership = iota
	// LegacyDoubleDownscale divides the start cell by the ratio twice.
	LegacyDoubleDownscale
)

// String returns "coarse" or "legacy".
func (m Membership) String() string {
	switch m {
	case CoarseCells:
		return "coarse"
	case LegacyDoubleDownscale:
		return "legacy"
	}

	return fmt.Sprintf("membership(%d)", int(m))
}

// ParseMembership resolves "coarse" or "legacy".
func ParseMembership(s string) (Membership, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coarse", "":
		return CoarseCells, nil
	case "legacy":
		return LegacyDoubleDownscale, nil
	}

	return CoarseCells, fmt.Errorf("compare: unknown membership mode %q", s)
}

// Options configures Compare.
type Options struct {
	Membership Membership
	Ctx        context.Context
	Logger     logrus.FieldLogger
}

// Option represents a functional option for Compare.
type Option func(*Options)

// WithMembership selects the membership mode.
func WithMembership(m Membership) Option {
	return func(o *Options) {
		o.Membership = m
	}
}

// WithContext sets a context checked between paths.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithLogger routes debug output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns CoarseCells membership, a background context and a
// discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Membership: CoarseCells,
		Ctx:        context.Background(),
		Logger:     l,
	}
}

func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = DefaultOptions().Logger
	}
}
