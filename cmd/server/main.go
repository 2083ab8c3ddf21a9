package main

import "github.com/eventure/server/cmd/server/cmd"

func main() {
	cmd.Execute()
}
