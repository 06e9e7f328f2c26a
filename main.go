package main

import (
	"fmt"
	"log"
	"os"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"

	"github.com/matt-g-everett/algoviz/stream"
)

// Persistent flags
var (
	configPath string
	speedFlag  int
	seedFlag   int64
	terminal   bool
	verbose    bool
)

var config stream.Config

var rootCmd = &cobra.Command{
	Use:   "algoviz",
	Short: "Animate sorting and pathfinding algorithms",
	Long: `algoviz runs a classic sorting or pathfinding algorithm, records every
intermediate state and plays the states back at a controllable speed on an
MQTT-connected LED matrix, in the terminal, or both.

Playback can be paused, resumed, reset and sped up by publishing JSON to the
control topic, for example {"type":"speed","speed":90}.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "YAML config file")
	rootCmd.PersistentFlags().IntVar(&speedFlag, "speed", 0, "playback speed 1-100, overrides the config")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.PersistentFlags().BoolVar(&terminal, "terminal", false, "draw playback in the terminal")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log playback transitions")

	rootCmd.AddCommand(sortCmd, pathCmd, serveCmd, listCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	config, err = stream.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if speedFlag != 0 {
		config.Playback.Speed = speedFlag
	}
	if verbose {
		log.Printf("Config: %+v", config)
	}
	return nil
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
