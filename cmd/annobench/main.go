package main

import (
	"github.com/mlaforge/annobench/internal/cmd"
)

func main() {
	cmd.Execute()
}
