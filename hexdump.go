package nibble

import (
	"fmt"
	"strings"
)

// HexDump renders data as rows of hex bytes with an offset gutter and
// a printable-ASCII column, chunk bytes per row.
func HexDump(data []byte, chunk int) string {
	return HexDumpFrom(data, chunk, 0)
}

// HexDumpFrom is HexDump with the offset gutter starting at from.
func HexDumpFrom(data []byte, chunk int, from int) string {
	if chunk <= 0 {
		chunk = 16
	}
	var sb strings.Builder
	for start := 0; start < len(data); start += chunk {
		end := start + chunk
		if end > len(data) {
			end = len(data)
		}
		row := data[start:end]
		fmt.Fprintf(&sb, "%08x\t", from+start)
		for _, b := range row {
			fmt.Fprintf(&sb, "%02x ", b)
		}
		for i := len(row); i < chunk; i++ {
			sb.WriteString("   ")
		}
		sb.WriteByte('\t')
		for _, b := range row {
			if b >= 32 && b <= 126 || b >= 128 {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
