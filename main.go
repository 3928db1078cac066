package main

import "github.com/stackprobe/stackprobe-cli/cmd"

var execCmd = cmd.Execute

func main() {
	execCmd()
}
