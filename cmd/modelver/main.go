package main

import (
	"github.com/modelver/modelver/pkg/cli"
)

func main() {
	cli.Execute()
}
