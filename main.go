package main

import "pyctl/internal/cli"

func main() {
	cli.Execute()
}
