package utils

import "github.com/google/uuid"

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator generates time-ordered UUID v7 identifiers, so that records
// created later sort after earlier ones.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
