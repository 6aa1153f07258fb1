package main

import (
	"github.com/make-os/dao/cmd"
)

func main() {
	cmd.Execute()
}
