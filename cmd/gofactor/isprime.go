package main

import (
	"fmt"

	"github.com/mossbach/gofactor/factor"
	"github.com/spf13/cobra"
)

var isprimeCmd = &cobra.Command{
	Use:   "isprime N",
	Short: "Report whether N is prime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseUint128(args[0])
		if err != nil {
			return err
		}
		fmt.Println(factor.IsPrime(n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(isprimeCmd)
}
