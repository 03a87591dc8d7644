package main

import "text-share/cmd"

func main() {
	cmd.Execute()
}
