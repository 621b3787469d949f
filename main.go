package main

import "github.com/jmehdipour/radius-admin/cmd"

func main() {
	cmd.Execute()
}
