package main

import "github.com/goliatone/go-bootform/internal/cli"

func main() {
	cli.Execute()
}
