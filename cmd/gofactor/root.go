// Command gofactor is a thin cobra CLI over the factor package — command
// definitions stay thin, all logic lives in the library packages, in the
// cmd/pkg-cmd split go-corset's zkc command tree uses.
package main

import (
	"fmt"
	"os"

	"github.com/mossbach/gofactor/montgomery"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofactor",
	Short: "Deterministic primality testing and integer factorization up to 128 bits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, _ := cmd.Flags().GetBool("info")
		if info {
			fmt.Println("widening-multiply:", montgomery.HardwareMulInfo())
			return nil
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "log driver dispatch decisions")
	rootCmd.PersistentFlags().Bool("info", false, "print hardware multiply dispatch info and exit")

	cobra.OnInitialize(func() {
		if v, _ := rootCmd.PersistentFlags().GetBool("verbose"); v {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
