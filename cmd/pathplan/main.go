package main

import "github.com/mistakeknot/pathplan/internal/cli"

func main() {
	cli.Main()
}
