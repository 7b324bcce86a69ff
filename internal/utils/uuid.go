package utils

import "github.com/google/uuid"

// UUIDGenerator produces record identifiers. It prefers UUIDv7 so that ids
// sort in creation order, and falls back to a random v4 id if the v7 clock
// source fails.
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
