package main

import "github.com/tinthq/tint/internal/cli"

func main() {
	cli.Execute()
}
