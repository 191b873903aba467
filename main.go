package main

import "github.com/postmcp/cmd"

func main() {
	cmd.Execute()
}
