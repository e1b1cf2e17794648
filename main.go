package main

import "github.com/mouse-blink/ggrep/cmd"

func main() {
	cmd.Execute()
}
