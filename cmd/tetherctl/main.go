package main

import (
	"os"

	"euphoria.io/tether/tetherctl/cmd"
)

func main() { cmd.Run(os.Args[1:]) }
