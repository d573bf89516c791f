// Package main provides the trailkit CLI.
package main

import "github.com/mesh-intelligence/trailkit/internal/cli"

func main() {
	cli.Execute()
}
