package main

import (
	"fmt"
	"strings"

	"github.com/mossbach/gofactor/factor"
	"github.com/spf13/cobra"
)

var factorCmd = &cobra.Command{
	Use:   "factor N",
	Short: "Print the prime factorization of N",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseUint128(args[0])
		if err != nil {
			return err
		}

		var parts []string
		factor.Factorize(n, func(p factor.Prime) {
			parts = append(parts, p.String())
		})
		fmt.Printf("%s = %s\n", n, strings.Join(parts, " * "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(factorCmd)
}
