package main

import "github.com/kasuboski/pager/cmd"

func main() {
	cmd.Execute()
}
