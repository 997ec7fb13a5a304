package main

import "magewell-cli/cmd"

func main() {
	cmd.Execute()
}
