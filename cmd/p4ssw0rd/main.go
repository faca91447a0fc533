package main

import (
	"os"

	"github.com/hasbyte1/go-p4ssw0rd/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:]))
}
