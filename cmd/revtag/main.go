package main

import (
	"github.com/NVIDIA/revtag/pkg/cli"
)

func main() {
	cli.Execute()
}
