package main

import (
	"pipelines.software/component-model/cli/cmd"
)

func main() {
	cmd.Execute()
}
