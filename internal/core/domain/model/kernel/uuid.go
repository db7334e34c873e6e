package kernel

import (
	"fmt"

	"parcels/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies aggregates. The zero value is invalid.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses any format accepted by uuid.Parse and rejects the nil UUID.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return fromGoogle(id)
}

// UUIDFromBytes builds a UUID from its 16-byte form, as stored by the quotes table.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return fromGoogle(id)
}

func fromGoogle(id uuid.UUID) (UUID, error) {
	out := UUID{id: id}
	if err := out.Validate(); err != nil {
		return UUID{}, err
	}
	return out, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google UUID for adapters (gorm DTOs, API wire types).
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
