// Package internal contains shared infrastructure for waypoint packages.
// Types and functions in this package are not part of the public API.
package internal
