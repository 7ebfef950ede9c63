package main

import "github.com/jfmyers9/homepod/cmd"

func main() {
	cmd.Execute()
}
