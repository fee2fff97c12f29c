// Package version carries the build identity of the untappd client.
//
// Version, commit, and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/untappd/version.Version=1.2.0" ./cmd/untappd
//
// Missing values fall back to the VCS stamp embedded by the Go toolchain.
package version
