package usecase

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	namespaceAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	namespaceLength   = 12
	maxRetries        = 5
)

// generateNamespace returns a random lowercase alphanumeric token. 36^12 values
// keep collisions rare; the unique index on users.namespace catches the rest.
func generateNamespace() (string, error) {
	ns, err := gonanoid.Generate(namespaceAlphabet, namespaceLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate namespace: %w", err)
	}
	return ns, nil
}
