package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/miband/internal/version"
)

func main() {
	_ = godotenv.Load()

	if err := fang.Execute(context.Background(), rootCmd(), fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "miband",
		Short:        "Mi Band steps and sleep in your terminal",
		Version:      version.Get(),
		SilenceUsage: true,
	}

	cmd.AddCommand(loginCmd())
	cmd.AddCommand(redeemCmd())
	cmd.AddCommand(bandCmd())
	cmd.AddCommand(logoutCmd())

	return cmd
}
