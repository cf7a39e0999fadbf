package main

import (
	"github.com/jgbaldwinbrown/fqlink/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
