package main

import (
	"os"

	"github.com/yuriiter/bikeshare/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
