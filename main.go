package main

import "github.com/cveillard/radiant/cmd"

func main() {
	cmd.Execute()
}
