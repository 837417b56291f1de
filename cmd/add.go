/*
Copyright © 2025 Hello Project
*/
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/common-creation/hello/internal/greeter"
)

var wrapOverflow bool

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [--] A B",
	Short: "Print the sum of two integers",
	Long: `Print the sum of two base-10 integers.

By default a sum that does not fit in a signed machine integer is an
error. Use --wrap to get two's complement wraparound instead.

A leading minus reads as a flag, so put -- before negative operands.

Examples:
  hello add 2 3
  hello add -- -1 1`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().BoolVar(&wrapOverflow, "wrap", false, "wrap around on overflow instead of failing")
	addCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w (put -- before negative operands, e.g. hello add -- -1 1)", err)
	})
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := parseOperand(args[0])
	if err != nil {
		return err
	}
	b, err := parseOperand(args[1])
	if err != nil {
		return err
	}

	var sum int
	if wrapOverflow {
		sum = greeter.Add(a, b)
	} else {
		sum, err = greeter.AddChecked(a, b)
		if err != nil {
			return fmt.Errorf("%d + %d: %w", a, b, err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), sum)
	return nil
}

func parseOperand(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return int(n), nil
}
