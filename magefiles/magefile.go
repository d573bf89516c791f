//go:build mage

// Package main provides build targets for the trailkit project using Mage.
//
// Usage:
//
//	mage build          Compile the trailkit binary to bin/
//	mage install        Install trailkit to GOPATH/bin
//	mage clean          Remove build artifacts
//	mage test:all       Run all tests
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Run tests and write coverage.out
//	mage lint           Run go vet and golangci-lint
package main

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "trailkit"
	binaryDir  = "bin"
	cmdDir     = "./cmd/trailkit"
	coverFile  = "coverage.out"
)
