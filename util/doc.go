// Package util provides small string helpers shared by the client packages.
package util
