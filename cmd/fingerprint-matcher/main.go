// Package main provides the entry point for the fingerprint matcher.
//
// Run without arguments to open the desktop window, or compare two images
// from the shell:
//
//	fingerprint-matcher compare left.png right.png
//
// See --help for all available options.
package main

func main() {
	Execute()
}
