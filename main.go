package main

import "github.com/xvierd/gitcoach/cmd"

func main() {
	cmd.Execute()
}
