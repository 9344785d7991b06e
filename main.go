package main

import "github.com/lepinkainen/shelfscan/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
