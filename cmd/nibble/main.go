package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nibblekit/nibble/ascii"
	"github.com/spf13/cobra"
)

var noColor bool

func main() {
	rootCmd := &cobra.Command{
		Use:          "nibble",
		Short:        "Poke at files with the nibble parser toolkit",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newFindCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns the contents of the file argument, or stdin when
// no argument was given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func paint(color, format string, args ...any) string {
	if noColor || color == "" {
		return fmt.Sprintf(format, args...)
	}
	return ascii.Color(color, format, args...)
}
