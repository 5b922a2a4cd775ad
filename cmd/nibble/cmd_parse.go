package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/nibblekit/nibble"
	"github.com/nibblekit/nibble/ascii"
	"github.com/nibblekit/nibble/examples/jsonish"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a JSON-ish file and print the value tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			src := string(data)
			v, err := jsonish.Parse(src)
			if err != nil {
				fmt.Fprint(os.Stderr, nibble.Report(src, err))
				return fmt.Errorf("invalid document")
			}
			printValue(os.Stdout, v, ascii.DefaultTheme, 0)
			fmt.Println()
			return nil
		},
	}

	return cmd
}

func printValue(w io.Writer, v any, theme ascii.Theme, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	switch x := v.(type) {
	case map[string]any:
		if len(x) == 0 {
			fmt.Fprint(w, "{}")
			return
		}
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(w, "{")
		for i, k := range keys {
			fmt.Fprintf(w, "%s  %s: ", indent, paint(theme.Key, "%q", k))
			printValue(w, x[k], theme, depth+1)
			if i < len(keys)-1 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s}", indent)
	case []any:
		if len(x) == 0 {
			fmt.Fprint(w, "[]")
			return
		}
		fmt.Fprintln(w, "[")
		for i, item := range x {
			fmt.Fprintf(w, "%s  ", indent)
			printValue(w, item, theme, depth+1)
			if i < len(x)-1 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s]", indent)
	case string:
		fmt.Fprint(w, paint(theme.Literal, "%q", x))
	case float64:
		fmt.Fprint(w, paint(theme.Literal, "%g", x))
	case bool:
		fmt.Fprint(w, paint(theme.Literal, "%t", x))
	default:
		fmt.Fprint(w, paint(theme.Null, "null"))
	}
}
