package main

import (
	"github.com/degrootsam/shai-hulud-detector/cmd"
)

func main() {
	cmd.Execute()
}
