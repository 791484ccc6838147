package main

import "github.com/mchmarny/captcha/pkg/cli"

func main() {
	cli.ExecuteVariant("half")
}
