package main

import (
	"github.com/vanecli/vane/pkg/cli/cmd"
)

func main() {
	cmd.Execute()
}
