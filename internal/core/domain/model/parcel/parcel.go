package parcel

import (
	"errors"
	"fmt"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// MinQuantity is the smallest number of items a parcel may declare.
const MinQuantity = 1

// ErrParcelIsNotConstructed is returned when validating a zero-value Parcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is the declared size, weight and quantity of one delivery.
type Parcel struct { //nolint:recvcheck //using for validation
	size     SizeTier
	weight   WeightTier
	quantity int
	guard    guard.ConstructorGuard
}

// NewParcel validates all three fields and reports every violation together.
func NewParcel(size SizeTier, weight WeightTier, quantity int) (Parcel, error) {
	p := Parcel{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setSize(size),
		p.setWeight(weight),
		p.setQuantity(quantity),
	); err != nil {
		return Parcel{}, err
	}

	return p, nil
}

func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p Parcel) Size() SizeTier {
	return p.size
}

func (p Parcel) Weight() WeightTier {
	return p.weight
}

func (p Parcel) Quantity() int {
	return p.quantity
}

func (p *Parcel) setSize(size SizeTier) error {
	if err := size.Validate(); err != nil {
		return err
	}
	p.size = size
	return nil
}

func (p *Parcel) setWeight(weight WeightTier) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setQuantity(quantity int) error {
	if quantity < MinQuantity {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is less than %d", quantity, MinQuantity),
		)
	}
	p.quantity = quantity
	return nil
}
