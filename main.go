package main

import "github.com/princinho/arcadiabackend/cmd"

func main() {
	cmd.Execute()
}
