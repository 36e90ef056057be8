package cmd

import (
	"github.com/spf13/cobra"
)

// Version is stamped at build time with -ldflags "-X magicbank-loan-engine/cmd/underwrite/cmd.Version=...".
var Version = "dev"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "underwrite",
		Short:        "Score loan applications with the Magic Bank underwriting rules",
		SilenceUsage: true,
	}
	root.AddCommand(
		newScoreCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
