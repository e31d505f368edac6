// Package types defines the shared result types passed between the
// scanner core and its consumers: the conflict map, scan reports, and
// the supporting records used by the CLI layer.
//
// Keeping these in a leaf package lets the scanner, the command layer,
// and the renderers agree on shapes without importing each other.
package types
