package utils

import "github.com/google/uuid"

// UUIDGenerator produces request trace ids: time-ordered UUIDv7 values,
// falling back to a random UUIDv4.
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
