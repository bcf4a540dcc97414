package main

import "github.com/musicionary/organice/internal/commands"

func main() {
	commands.Execute()
}
