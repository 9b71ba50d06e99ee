package main

import "github.com/katalvlaran/surveyor/cmd"

func main() {
	cmd.Execute()
}
