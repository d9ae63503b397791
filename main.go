package main

import "github.com/yoanbernabeu/cmdstats/cli"

func main() {
	cli.Execute()
}
