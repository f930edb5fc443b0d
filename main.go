/*
Copyright © 2025 Wirenboard
*/
package main

import "github.com/wirenboard/serial-tool/cmd"

func main() {
	cmd.Execute()
}
