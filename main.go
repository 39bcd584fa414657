package main

import "url-risk-checker/commands"

func main() {
	commands.Execute()
}
