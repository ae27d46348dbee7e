// Package main is the entry point for the Indentect CLI.
package main

import "indentect.dev/pkg/indentect/cmd"

func main() {
	cmd.Execute()
}
