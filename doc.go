// Package main provides the bsnav command. It renders Bootstrap 5 navigation
// bars described in a TOML file, either printed as an html fragment or served
// by a preview web server built on Fiber that marks the entry matching the
// requested path as active.
package main
