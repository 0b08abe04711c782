package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that an asset name is a bare file stem.
// Separators and dots are rejected so a name cannot climb out of its
// directory or change its extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
