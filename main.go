package main

import (
	"github.com/inkwave/inkwave-api/cmd"
)

func main() {
	cmd.Execute()
}
