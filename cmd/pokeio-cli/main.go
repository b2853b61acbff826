package main

import "pokeio/cmd/pokeio-cli/cmd"

func main() {
	cmd.Execute()
}
