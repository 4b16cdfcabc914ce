package main

import "github.com/emiliopalmerini/typouniverse/internal/cli"

func main() {
	cli.Execute()
}
