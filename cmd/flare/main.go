// Flare CLI — visual CSS inspector that turns style tweaks into prompts.
//
// Usage:
//
//	flare [command] [flags]
//
// Commands:
//
//	inspect    Attach to a page and open the inspector panel (default)
//	history    List archived prompts
//	show       Print one archived prompt by ID
//	version    Print version information
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flarehq/flare/internal/browser"
	"github.com/flarehq/flare/internal/config"
	"github.com/flarehq/flare/internal/database"
	"github.com/flarehq/flare/internal/inspector"
	"github.com/flarehq/flare/internal/tui"
	"github.com/flarehq/flare/pkg/timeutil"
)

var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "flare",
	Short: "Visual CSS inspector that turns style tweaks into AI prompts",
	Long: `Flare attaches to a live page, lets you pick an element and edit its
computed style in place, and turns the accumulated changes into a prompt
you can paste into an AI coding assistant.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		config.SetupLogging()
		return nil
	},
	// Bare "flare" opens the inspector.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd.Context())
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Attach to a page and open the inspector panel",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd.Context())
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived prompts, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := database.NewDBService(viper.GetString(config.KeyDatabasePath))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		entries, err := store.QueryArchive(viper.GetInt(config.KeyArchiveLimit))
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No archived prompts yet. Copy one with 'c' inside the inspector.")
			return nil
		}

		for _, e := range entries {
			fmt.Printf("%4d  %s  %-10s  %-32s  %s\n",
				e.EntryID,
				timeutil.FormatStamp(e.CreatedAt),
				timeutil.RelativeTime(e.CreatedAt),
				truncateCol(e.PageURL, 32),
				e.Summary)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one archived prompt by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int64
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid entry ID %q", args[0])
		}

		store, err := database.NewDBService(viper.GetString(config.KeyDatabasePath))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer store.Close()

		entry, err := store.GetArchiveEntry(id)
		if err != nil {
			return err
		}
		fmt.Print(entry.Prompt)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Flare v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
	},
}

// runInspect wires the full stack: database, browser connection, session,
// and the BubbleTea program.
func runInspect(ctx context.Context) error {
	store, err := database.NewDBService(viper.GetString(config.KeyDatabasePath))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	insp, err := browser.Attach(ctx, browser.Options{
		RemoteURL: viper.GetString(config.KeyBrowserRemoteURL),
		PageURL:   viper.GetString(config.KeyPageURL),
		Headless:  viper.GetBool(config.KeyBrowserHeadless),
	})
	if err != nil {
		return fmt.Errorf("attaching to browser: %w", err)
	}
	defer insp.Close()

	session := inspector.NewSession()
	session.Subscribe(func() {
		logrus.WithField("changes", session.TotalChangeCount()).Debug("session updated")
	})

	model := tui.NewModel(session, store, &pageResolver{insp: insp})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running inspector panel: %w", err)
	}
	return nil
}

// pageResolver adapts the browser inspector to the resolver interface the
// panel consumes.
type pageResolver struct {
	insp *browser.Inspector
}

func (r *pageResolver) PageURL() string {
	return r.insp.PageURL()
}

func (r *pageResolver) Resolve(selector string) ([]inspector.StyleTarget, error) {
	targets, err := r.insp.Resolve(selector)
	if err != nil {
		return nil, err
	}
	return lo.Map(targets, func(t *browser.ElementTarget, _ int) inspector.StyleTarget {
		return t
	}), nil
}

func truncateCol(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to the SQLite database file")
	flags.String("url", "", "URL of the page to inspect")
	flags.String("remote", "", "DevTools URL of an already-running browser")
	flags.Bool("headless", false, "Launch the browser without a window")
	flags.String("log-file", "", "Write logs to this file instead of discarding them")
	flags.Int("limit", 0, "Maximum archive entries to list")

	viper.BindPFlag(config.KeyDatabasePath, flags.Lookup("db"))
	viper.BindPFlag(config.KeyPageURL, flags.Lookup("url"))
	viper.BindPFlag(config.KeyBrowserRemoteURL, flags.Lookup("remote"))
	viper.BindPFlag(config.KeyBrowserHeadless, flags.Lookup("headless"))
	viper.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
	viper.BindPFlag(config.KeyArchiveLimit, flags.Lookup("limit"))

	rootCmd.AddCommand(inspectCmd, historyCmd, showCmd, versionCmd)
}

func main() {
	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiYellow + cc.Bold,
		Commands:      cc.HiBlue + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
