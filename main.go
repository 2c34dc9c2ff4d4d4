package main

import "github.com/wuihee/c-rust-program-pairs/cmd"

func main() {
	cmd.Execute()
}
