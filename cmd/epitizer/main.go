// cmd/epitizer/main.go
package main

import (
	"epitizer/internal/appshell"
	"epitizer/internal/command"
)

func main() {
	appshell.Main(command.App())
}
