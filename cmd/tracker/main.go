package main

import "github.com/matheuseschaves/supermarket-tracker/cmd/tracker/commands"

func main() {
	commands.Execute()
}
