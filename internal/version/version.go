// Package version carries the build version shared by both binaries.
package version

// Version is set at build time via ldflags:
//
//	go build -ldflags "-X github.com/shhac/postie/internal/version.Version=1.2.3"
var Version = "dev"
