package main

import "github.com/ValentinKolb/kvprobe/cmd"

func main() {
	cmd.Execute()
}
