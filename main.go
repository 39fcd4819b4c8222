package main

import "github.com/theirongolddev/stash/cmd"

func main() {
	cmd.Execute()
}
