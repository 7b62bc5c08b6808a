package main

import (
	"github.com/pfrederiksen/charleston-events/internal/cli"
)

func main() {
	cli.Execute()
}
