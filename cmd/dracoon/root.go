package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dracoon "github.com/semtisem/dracoon-go"
	"github.com/semtisem/dracoon-go/client"
)

var (
	flagBaseURL string
	flagDebug   bool
)

var RootCmd = &cobra.Command{
	Use:   "dracoon",
	Short: "Command line client for a DRACOON cloud file-storage instance.",
	Long: `Command line client for a DRACOON cloud file-storage instance.
Credentials are read from DRACOON_CLIENT_ID, DRACOON_CLIENT_SECRET,
DRACOON_USERNAME and DRACOON_PASSWORD.`,
	SilenceUsage: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "DRACOON instance URL (overrides DRACOON_BASE_URL)")
	RootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

// newDracoon builds a connected SDK handle from environment and flags.
func newDracoon(ctx context.Context) (*dracoon.Dracoon, error) {
	cfg, err := client.FromEnv()
	if err != nil {
		return nil, err
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagDebug {
		cfg.Debug = true
	}

	dc, err := dracoon.New(cfg)
	if err != nil {
		return nil, err
	}
	username := os.Getenv("DRACOON_USERNAME")
	password := os.Getenv("DRACOON_PASSWORD")
	if err := dc.Connect(ctx, client.PasswordFlow(username, password)); err != nil {
		return nil, err
	}
	return dc, nil
}
