package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/philipparndt/idfview/internal/config"
	"github.com/philipparndt/idfview/version"
)

var (
	logLevel string
	log      *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "idfview",
	Short: "A viewer for EnergyPlus building geometry",
	Long: `idfview draws the surfaces of an EnergyPlus IDF model in 3D.
Walls, roofs, floors, windows and shading are coloured by type, zone
relative coordinates are moved into the global frame, and the axes are
fitted to a cube so the building keeps its proportions.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = config.NewLogger(os.Stderr, logLevel)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
