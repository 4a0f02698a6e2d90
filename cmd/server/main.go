// Package main is the entry point for the rooms gRPC server and its client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-rooms/cmd/server/client"
	"github.com/KirkDiggler/rpg-rooms/internal/config"
)

var (
	cfgFile string
	v       = viper.New()
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Room template registry and asset placement",
	Long: `rooms keeps a registry of named room templates and scatters assets
inside rooms so that no two land closer than a minimum distance.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		loaded, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./rooms.yaml or ~/.config/rooms/rooms.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "json", "log format (json, console)")
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))   // nolint:errcheck // flag exists
	_ = v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format")) // nolint:errcheck // flag exists

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
