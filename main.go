package main

import "spendash/cmd"

func main() {
	cmd.Execute()
}
