// Package uuid wraps github.com/google/uuid so that IDs can be bound
// from query strings and URI parameters by gin.
package uuid

import (
	google_uuid "github.com/google/uuid"
)

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// From wraps a google/uuid UUID.
func From(id google_uuid.UUID) UUID {
	return UUID{id}
}

// IsNil reports if no ID was set.
func (u UUID) IsNil() bool {
	return u.UUID == google_uuid.Nil
}

// UnmarshalParam implements gin's binding.BindUnmarshaler.
// An empty parameter is the Nil UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
