// Package testutil provides shared fixtures for daoscan tests: a
// byte-level ERF archive builder and a game-directory-tree builder.
// Both produce real files so tests exercise the same code paths the
// CLI does.
package testutil
