package assets

import "strings"

// ValidateAssetName rejects names that could escape the asset directory.
// Names must be bare identifiers: no path separators, no traversal, no
// null bytes, no extensions.
func ValidateAssetName(name string) error {
	if name == "" {
		return ErrInvalidAssetName
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return ErrInvalidAssetName
	}
	if strings.Contains(name, "..") {
		return ErrInvalidAssetName
	}
	return nil
}
