package main

import "github.com/aalvaropc/cartlab/internal/cli"

func main() {
	cli.Execute()
}
