package main

import "github.com/opensensorlab/sensordeck/cmd/sensordeck/cmd"

func main() {
	cmd.Execute()
}
