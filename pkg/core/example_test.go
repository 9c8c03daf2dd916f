package core_test

import (
	"fmt"

	"github.com/codewarden/codewarden/pkg/core"
)

func Example() {
	reports, err := core.AnalyzePath(".", core.DefaultOptions())
	if err != nil {
		fmt.Println("analysis failed:", err)
		return
	}
	for _, rep := range reports {
		for _, f := range rep.Findings {
			fmt.Printf("%s:%d %s\n", f.Path, f.Line, f.Message)
		}
	}
}
