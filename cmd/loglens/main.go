package main

import "loglens/internal/cmd"

func main() {
	cmd.Execute()
}
