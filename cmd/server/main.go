// Package main is the entry point for the battle server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/idlemon-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "idlemon-api",
	Short: "Idle creature battle server",
	Long:  `idlemon-api runs wild creature battles and captures over gRPC and websockets.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
