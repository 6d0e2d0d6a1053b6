// Command mustuse reports dropped results that must be inspected.
//
//	mustuse ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/ib-77/unitret/pkg/mustuse"
)

func main() {
	singlechecker.Main(mustuse.Analyzer)
}
