package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yeager/lugn/internal/catalog"
	"github.com/yeager/lugn/internal/config"
	"github.com/yeager/lugn/internal/export"
	"github.com/yeager/lugn/internal/logging"
	"github.com/yeager/lugn/internal/player"
	"github.com/yeager/lugn/internal/session"
	"github.com/yeager/lugn/internal/speech"
	"github.com/yeager/lugn/internal/tui"
)

// version is overridden at release time via -ldflags.
var version = "1.0.0"

var (
	// Global flags
	verbose bool
	logFile string

	// Export flags
	exportFormat string
	exportOut    string

	// Logger
	logger *zap.Logger
)

// rootCmd opens the interactive interface when called without a
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "lugn",
	Short: "lugn - a calming room in your terminal",
	Long: `lugn is a calming room in your terminal, built for autistic and ADHD
people: guided breathing, looping music, grounding strategies, an
emergency calm-down flow, and a private session log.

Run without arguments to open the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := logFile
		if path == "" {
			path = logging.DefaultPath()
		}

		var err error
		logger, err = logging.New(path, verbose)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		settingsPath := config.DefaultPath()
		cat := catalog.New(catalog.DefaultDirs(), logger)

		return tui.Run(tui.App{
			Settings:     config.Load(settingsPath),
			SettingsPath: settingsPath,
			Sessions:     session.NewStore(session.DefaultPath()),
			Catalog:      cat,
			Player:       player.New(cat, logger),
			Speaker:      speech.New(logger),
			Logger:       logger,
		})
	},
}

// tracksCmd lists every track the player can currently see.
var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the music tracks lugn can play",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.New(catalog.DefaultDirs(), logger)
		tracks := cat.Tracks()
		if len(tracks) == 0 {
			fmt.Println("No music found. Add audio files to one of:")
			for _, dir := range cat.Dirs() {
				fmt.Println("  " + dir)
			}
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Title", "Composer", "Path"})
		for _, track := range tracks {
			t.AppendRow(table.Row{track.ID, track.Title, track.Composer, track.Path})
		}
		t.Render()
		return nil
	},
}

// sessionsCmd prints the session log, oldest first.
var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show logged breathing and emergency sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions := session.NewStore(session.DefaultPath()).All()
		if len(sessions) == 0 {
			fmt.Println("No sessions logged yet.")
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Date", "Type", "Length", "Stress before", "Stress after"})
		for _, s := range sessions {
			t.AppendRow(table.Row{
				s.Date,
				s.Type,
				formatSeconds(s.DurationSeconds),
				formatStress(s.StressBefore),
				formatStress(s.StressAfter),
			})
		}
		t.Render()
		return nil
	},
}

// exportCmd writes the session log in a shareable format.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session log",
	Long: `Exports the session log for sharing with a therapist or caregiver.

Formats: csv (default), json, yaml. Writes to stdout unless --out is
given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		sessions := session.NewStore(session.DefaultPath()).All()

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOut, err)
			}
			defer f.Close()
			out = f
		}

		if err := export.Write(out, format, sessions); err != nil {
			return err
		}

		if exportOut != "" {
			fmt.Printf("Exported %d sessions to %s\n", len(sessions), exportOut)
		}
		return nil
	},
}

// speakCmd reads a phrase aloud, blocking until playback ends.
var speakCmd = &cobra.Command{
	Use:   "speak [text]...",
	Short: "Read a phrase aloud with the Swedish voice",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		speech.New(logger).SayWait(strings.Join(args, " "))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lugn version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lugn " + version)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file path (default: $XDG_STATE_HOME/lugn/lugn.log)")

	// Export flags
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Export format: csv, json, or yaml")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default: stdout)")

	// Add commands to root
	rootCmd.AddCommand(tracksCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func formatSeconds(seconds int) string {
	if seconds <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func formatStress(level int) string {
	if level == 0 {
		return "-"
	}
	return strconv.Itoa(level)
}
