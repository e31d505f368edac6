// Package erf reads BioWare ERF archive containers (versions V2.0 and
// V2.2), the packed-resource format used by Dragon Age: Origins.
//
// An archive is opened and parsed in one call; the result is an ordered
// table of contents plus a case-insensitive name index, and individual
// resources can then be extracted by name. The package is read-only:
// there is no write support and no decompression (the format's "packed
// length" is bookkeeping, not a compression indicator).
package erf
