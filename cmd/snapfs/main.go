package main

import (
	"github.com/keshon/snapfs/internal/cli"
)

func main() {
	cli.Execute()
}
