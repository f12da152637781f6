//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// Tools used by this repository:
// - github.com/matryer/moq (the *_mock_test.go files follow its output format)
// - github.com/pressly/goose/v3/cmd/goose (manual migration runs against
//   internal/adapter/postgres/migrations; the server and importer apply them
//   through the embedded provider)
