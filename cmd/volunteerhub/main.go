package main

import "github.com/volunteerhub-dev/volunteerhub/internal/cli"

func main() {
	cli.Execute()
}
