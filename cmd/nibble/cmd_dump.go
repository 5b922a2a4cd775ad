package main

import (
	"fmt"

	"github.com/nibblekit/nibble"
	"github.com/spf13/cobra"
)

func newDumpCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Hexdump a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			fmt.Print(nibble.HexDump(data, width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 16, "bytes per row")

	return cmd
}
