// Package version carries the release string, overridable at link time:
//
//	go build -ldflags "-X bammval/internal/version.Version=1.2.0" ./cmd/...
package version

var Version = "1.0.0"
