// Package kernel contains shared value objects used across the ordering domain.
//
// The package includes:
//   - UUID: a validated identifier wrapping github.com/google/uuid
//   - Price: a non-negative money amount expressed in cents
//
// All kernel types are immutable value objects. Their zero values are invalid
// and fail Validate; instances must be created through the package constructors.
package kernel
