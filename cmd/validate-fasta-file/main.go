// cmd/validate-fasta-file/main.go
package main

import (
	"bammval/internal/appshell"
	"bammval/internal/fastaapp"
)

func main() { appshell.Main(fastaapp.RunContext) }
