package main

import (
	"os"

	"github.com/diffractionlab/go-cif/cmd/cif/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
