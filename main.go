package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"

	"github.com/irinya/cmsc723-group9-p2/app"
)

var cmd *commander.Command

func init() {
	cmd = app.AllCommands()
}

func main() {
	err := cmd.Dispatch(app.DefaultArgs(os.Args[1:]))
	if err != nil {
		fmt.Printf("**err**: %v\n", err)
		os.Exit(1)
	}

	return
}
