package main

import "github.com/elxecutor/mufetch/cmd/mufetch/cmd"

func main() {
	cmd.Execute()
}
