package main

import "github.com/postfolio/meet/cmd/meet/cmd"

func main() {
	cmd.Execute()
}
