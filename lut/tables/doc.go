// Package tables holds the CIE 1931 lightness tables generated for common
// LED dimming setups. Each table is a string constant in read-only data,
// wrapped by a lut.Table.
//
// To add a table, list it in tables.yaml and run go generate.
package tables

//go:generate go run ../../cmd/cie1931gen -config tables.yaml
