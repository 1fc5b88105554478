package main

import "github.com/the-dev-tools/organizer/cmd/organizer/cmd"

func main() {
	cmd.Execute()
}
