package main

import "github.com/KaramelBytes/solstats/cmd"

func main() {
	cmd.Execute()
}
