package main

import "github.com/pklimov/progward/internal/cli"

func main() {
	cli.Execute()
}
