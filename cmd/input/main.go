// Command input reads user input from the terminal and writes it to stdout:
// a line of text by default, a fixed number of raw keystrokes with --numchar,
// or raw bytes up to a stop byte with --bytes-until.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/input"
)

var (
	bytesUntil     string
	numChars       int
	suppressOutput bool
)

var rootCmd = &cobra.Command{
	Use:           "input [prompt]",
	Short:         "Get input from the user",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&bytesUntil, "bytes-until", "u", "", "read bytes (not text) until a stop byte")
	rootCmd.Flags().IntVarP(&numChars, "numchar", "n", 0, "number of characters to read; suppresses output")
	rootCmd.Flags().BoolVarP(&suppressOutput, "suppress-output", "s", false, "don't print keystroke values")
}

func run(cmd *cobra.Command, args []string) error {
	var opts []input.Option
	if len(args) > 0 {
		opts = append(opts, input.WithPrompt(args[0]))
	}
	// Changed() distinguishes an absent flag from an explicit zero, which
	// must fail validation rather than mean "unlimited".
	if cmd.Flags().Changed("bytes-until") {
		opts = append(opts, input.WithBytesUntil(bytesUntil))
	}
	if cmd.Flags().Changed("numchar") {
		opts = append(opts, input.WithNumChars(numChars))
	}
	if suppressOutput {
		opts = append(opts, input.WithSuppressOutput())
	}

	r, err := input.New(opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	v, err := r.Read()
	if err != nil {
		return err
	}

	if v.IsBinary() {
		_, err := os.Stdout.Write(v.Bytes())
		return err
	}
	fmt.Println(v.Text())
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
