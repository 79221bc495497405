package main

import "trashquest/cmd/tq/root"

func main() {
	root.Execute()
}
