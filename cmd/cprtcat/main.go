// Package main is the entry point for the cprtcat CLI tool.
package main

import (
	"github.com/oscalforge/cprtcat/internal/cmd"
)

func main() {
	cmd.Execute()
}
