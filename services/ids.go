package services

import (
	"context"
	"fmt"
)

const maxIDAttempts = 8

// uniqueID draws short codes until one is not taken.
func uniqueID(ctx context.Context, newID func() string, exists func(context.Context, string) (bool, error)) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := newID()
		taken, err := exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("services: no free id after %d attempts", maxIDAttempts)
}
