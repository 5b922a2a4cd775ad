package main

import (
	"fmt"

	"github.com/nibblekit/nibble"
	"github.com/nibblekit/nibble/ascii"
	"github.com/spf13/cobra"
)

func newFindCmd() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "find [file]",
		Short: "Report every occurrence of a substring with its location",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pattern == "" {
				return fmt.Errorf("--pattern must not be empty")
			}
			data, err := readInput(args)
			if err != nil {
				return err
			}
			src := string(data)
			theme := ascii.DefaultTheme

			// Search the byte view: it has no rune-boundary
			// constraints, so binary files work too.
			in := nibble.NewBytes(data)
			count := 0
			for {
				pos := in.FindSubstring(pattern)
				if pos < 0 {
					break
				}
				hit := in.TakeFrom(pos)
				loc := nibble.Locate(src, hit.Origin())
				fmt.Printf("%s  %s\n",
					paint(theme.Offset, "%08x", hit.Origin()),
					paint(theme.Accent, "%s", loc))
				count++
				in = hit.TakeFrom(len(pattern))
			}
			fmt.Println(paint(theme.Muted, "%d match(es)", count))
			return nil
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "substring to search for")

	return cmd
}
