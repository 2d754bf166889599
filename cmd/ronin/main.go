package main

import "ronin/cmd/ronin/root"

func main() {
	root.Execute()
}
