package main

import "minimax/cmd"

func main() {
	cmd.Execute()
}
