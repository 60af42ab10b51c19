package main

import (
	"github.com/bangtable/bangtable/internal/cli"
)

func main() {
	cli.Execute()
}
