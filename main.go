package main

import "github.com/soulgarden/yobit-pairs/cmd"

func main() {
	cmd.Execute()
}
