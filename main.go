package main

import "cmdfolder/cmd"

func main() {
	cmd.Execute()
}
