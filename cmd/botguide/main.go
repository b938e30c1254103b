package main

import "github.com/jask/botguide/internal/cli"

func main() {
	cli.Execute()
}
