package main

import "github.com/cashflow-ng/cashflow-parser/internal/cli"

func main() {
	cli.Execute()
}
