package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "training-chatbot",
		Short: "Customer service training chatbot API",
		Long: `training-chatbot serves a chat API that either replies to trainee
messages or plays a simulated customer asking questions about the
configured company, and keeps the per-user chat history in the
configured store.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newCompanyInfoCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
