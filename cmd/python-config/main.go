// cmd/python-config/main.go
package main

import (
	"os"

	"github.com/arc-language/pyconfig/internal/cli"
	"github.com/arc-language/pyconfig/pkg/core"
)

func main() {
	os.Exit(cli.RunCompat(os.Args[0], os.Args[1:], core.LegacyPolicy()))
}
