package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/vehicle"
	"parcels/internal/pkg/guard"
)

var ErrCreateQuoteCommandIsNotConstructed = errors.New(
	"CreateQuoteCommand must be created via NewCreateQuoteCommand constructor",
)

// CreateQuoteCommand requests a priced, bookable quote for one vehicle type.
//
// Example:
//
//	quoteID := kernel.NewUUID()
//	p, _ := parcel.NewParcel(parcel.Small, parcel.Light, 1)
//	cmd, err := NewCreateQuoteCommand(quoteID, vehicle.BodaBoda, pickup, dropoff, p)
//	if err != nil {
//	    return fmt.Errorf("invalid quote request: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create quote: %w", err)
//	}
type CreateQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID     kernel.UUID
	vehicleType vehicle.Type
	pickup      kernel.Location
	dropoff     kernel.Location
	parcel      parcel.Parcel

	guard guard.ConstructorGuard
}

// NewCreateQuoteCommand validates every argument and reports all failures together.
func NewCreateQuoteCommand(
	quoteID kernel.UUID,
	vehicleType vehicle.Type,
	pickup, dropoff kernel.Location,
	p parcel.Parcel,
) (CreateQuoteCommand, error) {
	cmd := CreateQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setVehicleType(vehicleType),
		cmd.setRoute(pickup, dropoff),
		cmd.setParcel(p),
	); err != nil {
		return CreateQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateQuoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuoteCommandIsNotConstructed)
}

func (c CreateQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

func (c CreateQuoteCommand) VehicleType() vehicle.Type {
	return c.vehicleType
}

func (c CreateQuoteCommand) Pickup() kernel.Location {
	return c.pickup
}

func (c CreateQuoteCommand) Dropoff() kernel.Location {
	return c.dropoff
}

func (c CreateQuoteCommand) Parcel() parcel.Parcel {
	return c.parcel
}

func (c *CreateQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}

	c.quoteID = quoteID
	return nil
}

func (c *CreateQuoteCommand) setVehicleType(vehicleType vehicle.Type) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	c.vehicleType = vehicleType
	return nil
}

func (c *CreateQuoteCommand) setRoute(pickup, dropoff kernel.Location) error {
	if err := errors.Join(pickup.Validate(), dropoff.Validate()); err != nil {
		return err
	}

	c.pickup = pickup
	c.dropoff = dropoff
	return nil
}

func (c *CreateQuoteCommand) setParcel(p parcel.Parcel) error {
	if err := p.Validate(); err != nil {
		return err
	}

	c.parcel = p
	return nil
}
