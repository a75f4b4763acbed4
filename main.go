package main

import "github.com/t9mike/cs-telnet/cmd"

func main() {
	cmd.Execute()
}
