package demo

import (
	"github.com/iotaledger/hive.go/ierrors"
)

const (
	VariantDoubly = "doubly"
	VariantSingly = "singly"
	VariantBoth   = "both"
)

// ErrInvalidConfig is returned if the demo parameters can not produce a valid run.
var ErrInvalidConfig = ierrors.New("invalid demo configuration")

// Config holds the parameters of a demo run.
type Config struct {
	// Length is the number of random values each list is filled with.
	Length int `koanf:"length"`
	// Removals is the number of random elements removed from each list.
	Removals int `koanf:"removals"`
	// MaxValue is the exclusive upper bound of the random values.
	MaxValue int `koanf:"maxvalue"`
	// SliceBound is the exclusive upper bound of the randomly drawn copy window.
	SliceBound int `koanf:"slicebound"`
	// Seed seeds the random source, 0 picks a time based seed.
	Seed uint64 `koanf:"seed"`
	// Variant selects the lists to exercise: "doubly", "singly" or "both".
	Variant string `koanf:"variant"`
}

// DefaultConfig mirrors the classic demo: ten values below 100, five removals and a copy window below 5.
var DefaultConfig = Config{
	Length:     10,
	Removals:   5,
	MaxValue:   100,
	SliceBound: 5,
	Variant:    VariantBoth,
}

// Validate checks that every random pick of a run stays within the lists' bounds.
func (c Config) Validate() error {
	switch {
	case c.Length < 1:
		return ierrors.Wrapf(ErrInvalidConfig, "length must be positive, got %d", c.Length)
	case c.Removals < 0 || c.Removals > c.Length:
		return ierrors.Wrapf(ErrInvalidConfig, "removals must be in [0, %d], got %d", c.Length, c.Removals)
	case c.MaxValue < 1:
		return ierrors.Wrapf(ErrInvalidConfig, "maxValue must be positive, got %d", c.MaxValue)
	case c.SliceBound < 1 || c.SliceBound-1 > c.Length-c.Removals:
		return ierrors.Wrapf(ErrInvalidConfig, "sliceBound must be in [1, %d], got %d", c.Length-c.Removals+1, c.SliceBound)
	}

	switch c.Variant {
	case VariantDoubly, VariantSingly, VariantBoth:
		return nil
	default:
		return ierrors.Wrapf(ErrInvalidConfig, "unknown variant %q", c.Variant)
	}
}
