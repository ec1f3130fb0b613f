// Package main is the entry point of the saju command line tool.
package main

import "github.com/phrazzld/saju-api/internal/cli"

func main() {
	cli.Execute()
}
