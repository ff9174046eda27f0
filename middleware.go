package sproute

import (
	"fmt"
	"time"
)

// NavInfo is a middleware giving basic navigation stats
func NavInfo(ctx Context) error {
	start := time.Now()

	defer func() {
		fmt.Printf("%sZ navigate %q -> %q [%s]\n",
			time.Now().UTC().Format("20060102T150405"),
			ctx.Path(), ctx.Pattern(), time.Since(start))
	}()

	return ctx.Next()
}
