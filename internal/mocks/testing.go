// Package mocks provides hand-written testify mocks for the service and
// repository interfaces used across the test suite.
package mocks

import "github.com/stretchr/testify/mock"

// TestingT is the subset of *testing.T the mock constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}
