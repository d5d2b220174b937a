package main

import "github.com/MeKo-Tech/arbitime/cmd/arbitime/cmd"

func main() {
	cmd.Execute()
}
