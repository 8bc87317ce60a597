package main

import "github.com/jrsteele09/torneo-pingpong/cmd/torneo/cmd"

func main() {
	cmd.Execute()
}
