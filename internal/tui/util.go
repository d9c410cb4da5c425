package tui

import (
	"fmt"
	"strings"
)

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func padRight(s string, n int) string {
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

// fmtPoint prints c the way the command line accepts it ("RE,IM").
func fmtPoint(c complex128) string {
	return fmt.Sprintf("%.10g,%.10g", real(c), imag(c))
}
