package main

import "github.com/vietddude/supafetch/internal/cli"

func main() {
	cli.Execute()
}
