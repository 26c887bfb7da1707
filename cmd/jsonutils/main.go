package main

import "github.com/cybergodev/jsonutils/internal/cli"

func main() {
	cli.Execute()
}
