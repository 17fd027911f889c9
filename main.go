package main

import "github.com/agentic-research/canvaspack/cmd"

func main() {
	cmd.Execute()
}
