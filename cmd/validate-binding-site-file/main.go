// cmd/validate-binding-site-file/main.go
package main

import (
	"bammval/internal/appshell"
	"bammval/internal/bindingsiteapp"
)

func main() { appshell.Main(bindingsiteapp.RunContext) }
