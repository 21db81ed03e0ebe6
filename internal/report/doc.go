// Package report renders a validator's verdict for machines and humans.
//
// Writers are looked up by format name in a registry filled from init()
// blocks; "none" is accepted by the CLI but never reaches the registry.
// The exit code stays the contract; a report only describes it.
package report
