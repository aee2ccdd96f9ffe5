//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq (service and middleware mocks, see //go:generate lines)
// - github.com/pressly/goose/v3/cmd/goose (manual runs of internal/adapter/postgres/migrations)
