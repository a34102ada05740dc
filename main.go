package main

import "github.com/KaramelBytes/winestats/cmd"

func main() {
	cmd.Execute()
}
