package main

import (
	"fmt"

	"github.com/mossbach/gofactor/factor"
	"github.com/spf13/cobra"
)

var gcdCmd = &cobra.Command{
	Use:   "gcd A B",
	Short: "Print gcd(A, B)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseUint128(args[0])
		if err != nil {
			return err
		}
		b, err := parseUint128(args[1])
		if err != nil {
			return err
		}
		fmt.Println(factor.GreatestCommonDivisor(a, b))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gcdCmd)
}
