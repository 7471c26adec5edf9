// Openstudio is a small 3D scene editor showing a stylised London.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"openstudio/internal/assistant"
	"openstudio/internal/config"
	"openstudio/internal/engine"
	"openstudio/internal/game"
	"openstudio/internal/world"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

type options struct {
	configPath string
	logFile    string
	level      logLevelFlag
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{level: logLevelFlag{value: slog.LevelInfo}}

	root := &cobra.Command{
		Use:   "openstudio",
		Short: "Interactive 3D scene editor",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(opts, cmd.ErrOrStderr())
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEditor(opts)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultPath, "YAML config file")
	root.PersistentFlags().StringVar(&opts.logFile, "logfile", "", "write logs to this file instead of stderr")
	root.PersistentFlags().Var(&opts.level, "loglevel", "log level: debug, info, warn, error")

	root.AddCommand(runCmd(opts))
	root.AddCommand(askCmd())
	root.AddCommand(cityCmd(opts))
	root.AddCommand(configCmd(opts))
	return root
}

func runCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the editor window (default)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEditor(opts)
		},
	}
}

func askCmd() *cobra.Command {
	var topicOnly bool
	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Ask the built-in guide a question",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, assistant.Greeting)
				return nil
			}
			question := strings.Join(args, " ")
			if topicOnly {
				topic := assistant.Topic(question)
				if topic == "" {
					topic = "none"
				}
				fmt.Fprintln(out, topic)
				return nil
			}
			fmt.Fprintln(out, assistant.Reply(question))
			return nil
		},
	}
	cmd.Flags().BoolVar(&topicOnly, "topic", false, "print only the topic the question matches")
	return cmd
}

func cityCmd(opts *options) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "city",
		Short: "Build the London scene without a window and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.City.Seed = seed
			}
			return printCity(cmd.OutOrStdout(), cfg)
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for the city layout")
	return cmd
}

func configCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(cfg)
		},
	}
}

func runEditor(opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	game.New(cfg).Run()
	return nil
}

func printCity(out io.Writer, cfg config.Config) error {
	seed := cfg.City.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	w := world.New(world.CityOptions{Buildings: cfg.City.Buildings}, world.NewRand(seed))

	counts := make(map[engine.Kind]int)
	for _, e := range w.Scene.Entities() {
		counts[e.Kind]++
	}
	fmt.Fprintf(out, "seed %d: %d entities, %d buildings, %d helpers\n",
		seed, w.Scene.Len(), counts[engine.KindBuilding], counts[engine.KindHelper])
	fmt.Fprintf(out, "regions: %s\n", strings.Join(w.Regions.Names(), ", "))
	for _, r := range w.Regions {
		fmt.Fprintf(out, "  %-15s (%.1f, %.1f, %.1f)\n", r.Name, r.Center.X, r.Center.Y, r.Center.Z)
	}
	return nil
}

func setupLogging(opts *options, stderr io.Writer) {
	var w io.Writer = stderr
	if opts.logFile != "" {
		w = &lumberjack.Logger{
			Filename:   opts.logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
		}
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: opts.level.value})
	slog.SetDefault(slog.New(h))
}
