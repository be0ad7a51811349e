package main

import "github.com/zoobzio/recode/cmd/recode/cmd"

func main() {
	cmd.Execute()
}
