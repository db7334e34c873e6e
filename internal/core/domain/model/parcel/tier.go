package parcel

import (
	"errors"
	"fmt"

	"parcels/internal/pkg/errs"
)

// ErrInvalidTier is the cause carried when a size or weight value is not a known tier.
var ErrInvalidTier = errors.New("unknown parcel tier")

// SizeTier classifies a parcel's bulk. The zero value is invalid.
type SizeTier int

const (
	UnknownSize SizeTier = iota
	Small
	Medium
	Large
	ExtraLarge
)

// WeightTier classifies a parcel's mass. The zero value is invalid.
type WeightTier int

const (
	UnknownWeight WeightTier = iota
	Light
	MediumWeight
	Heavy
	VeryHeavy
)

var sizeCodes = map[SizeTier]string{
	Small:      "small",
	Medium:     "medium",
	Large:      "large",
	ExtraLarge: "extra_large",
}

var sizeLabels = map[SizeTier]string{
	Small:      "Small (fits in hand)",
	Medium:     "Medium (fits in backpack)",
	Large:      "Large (needs carrier)",
	ExtraLarge: "Extra Large (needs vehicle cargo)",
}

var weightCodes = map[WeightTier]string{
	Light:        "light",
	MediumWeight: "medium",
	Heavy:        "heavy",
	VeryHeavy:    "very_heavy",
}

var weightLabels = map[WeightTier]string{
	Light:        "Light (0-5 kg)",
	MediumWeight: "Medium (5-15 kg)",
	Heavy:        "Heavy (15-50 kg)",
	VeryHeavy:    "Very Heavy (50+ kg)",
}

// SizeTiers returns every valid size tier in ascending order.
func SizeTiers() []SizeTier {
	return []SizeTier{Small, Medium, Large, ExtraLarge}
}

// WeightTiers returns every valid weight tier in ascending order.
func WeightTiers() []WeightTier {
	return []WeightTier{Light, MediumWeight, Heavy, VeryHeavy}
}

// ParseSizeTier maps a wire code such as "extra_large" to its tier.
func ParseSizeTier(code string) (SizeTier, error) {
	for tier, c := range sizeCodes {
		if c == code {
			return tier, nil
		}
	}
	return UnknownSize, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%w: size %q", ErrInvalidTier, code))
}

// ParseWeightTier maps a wire code such as "very_heavy" to its tier.
func ParseWeightTier(code string) (WeightTier, error) {
	for tier, c := range weightCodes {
		if c == code {
			return tier, nil
		}
	}
	return UnknownWeight, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%w: weight %q", ErrInvalidTier, code))
}

func (s SizeTier) Validate() error {
	if _, ok := sizeCodes[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%w: size %d", ErrInvalidTier, s))
	}
	return nil
}

// String returns the wire code, or "unknown".
func (s SizeTier) String() string {
	if c, ok := sizeCodes[s]; ok {
		return c
	}
	return "unknown"
}

func (s SizeTier) Label() string {
	return sizeLabels[s]
}

// Fits reports whether s is no larger than limit.
func (s SizeTier) Fits(limit SizeTier) bool {
	return s <= limit
}

func (w WeightTier) Validate() error {
	if _, ok := weightCodes[w]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%w: weight %d", ErrInvalidTier, w))
	}
	return nil
}

// String returns the wire code, or "unknown".
func (w WeightTier) String() string {
	if c, ok := weightCodes[w]; ok {
		return c
	}
	return "unknown"
}

func (w WeightTier) Label() string {
	return weightLabels[w]
}

// Fits reports whether w is no heavier than limit.
func (w WeightTier) Fits(limit WeightTier) bool {
	return w <= limit
}
