package main

import "github.com/glowdesk/notify/cmd"

func main() {
	cmd.Execute()
}
