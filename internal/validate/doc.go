// Package validate holds the verdict vocabulary shared by both validators.
//
// Scanners report failures as errors wrapping one of the sentinels below
// (or as a *FormatError). Apps turn an error into a process exit code with
// ExitCode, which is the only place that mapping lives.
package validate
