package main

import "github.com/hemobank/hemobank_backend/cmd"

func main() {
	cmd.Execute()
}
