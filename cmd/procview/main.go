package main

import (
	"github.com/prabalesh/procview/internal/cli"
)

func main() {
	cli.Execute()
}
