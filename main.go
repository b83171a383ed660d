package main

import "github.com/Aashish23092/cashflow-analyzer/cmd"

func main() {
	cmd.Execute()
}
