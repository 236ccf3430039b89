package templates

import (
	"fmt"
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// typeParams renders "T0, T1, ..." for n element types.
func typeParams(n int) string {
	return prefixedStrings("T", n)
}

// signalParams renders "s0 *Signal[T0], s1 *Signal[T1], ...".
func signalParams(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("s%d *Signal[T%d]", i, i)
	}
	return strings.Join(parts, ", ")
}

// erasedArgs renders "erase(s0), erase(s1), ...".
func erasedArgs(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("erase(s%d)", i)
	}
	return strings.Join(parts, ", ")
}
