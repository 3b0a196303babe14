// Package certify implements the certificate core: the template registry,
// the data binder, and the body composer whose output feeds every renderer.
package certify

import "fmt"

// ValidationError indicates a missing or invalid generation input.
// Generation aborts before any renderer runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// UnknownTypeError indicates a certificate type outside the fixed catalog.
// Unreachable through the closed selector UI; treated as a programming error.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown certificate type: %q", string(e.Type))
}

// AssetError indicates a renderer could not load a required asset, such as
// the letterhead logo. It aborts only the render that needed the asset.
type AssetError struct {
	Asset string
	Cause error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("failed to load asset %s: %v", e.Asset, e.Cause)
}

func (e *AssetError) Unwrap() error { return e.Cause }
