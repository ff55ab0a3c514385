package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"folio/internal/debug"
	"folio/internal/version"
	"folio/pkg/app"
	"folio/pkg/config"
	"folio/pkg/content"
	"folio/pkg/gui/icons"
	"folio/pkg/prefs"
	"folio/pkg/storage"
)

// printWidth is the page width for --print when stdout has no size
const printWidth = 80

type options struct {
	configPath  string
	theme       string
	resetIntro  bool
	print       bool
	noColor     bool
	showVersion bool
}

// stores holds the two opened stores and closes them together
type stores struct {
	durable storage.Store
	session storage.Store
}

func (s *stores) Close() {
	for _, st := range []storage.Store{s.durable, s.session} {
		if st == nil {
			continue
		}
		if err := st.Close(); err != nil {
			debug.Log().Warn("closing store", zap.Error(err))
		}
	}
}

func openStores(cfg *config.Config) *stores {
	s := &stores{}

	if err := config.EnsureFolioDir(); err != nil {
		debug.Log().Warn("creating folio directory", zap.Error(err))
	}
	durable, err := storage.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		// preferences still work for this run, they are just not kept
		debug.Log().Warn("durable storage unavailable", zap.String("path", cfg.Storage.Path), zap.Error(err))
		durable = storage.NewMemoryStore()
	}
	s.durable = durable

	if n, err := storage.PruneSessions(cfg.Session.Dir); err != nil {
		debug.Log().Debug("pruning sessions", zap.Error(err))
	} else if n > 0 {
		debug.Log().Debug("pruned ended sessions", zap.Int("count", n))
	}
	session, err := storage.OpenSession(cfg.Session.Dir, cfg.Session.ID)
	if err != nil {
		debug.Log().Warn("session storage unavailable", zap.Error(err))
		s.session = storage.NewMemoryStore()
	} else {
		debug.Log().Debug("session storage", zap.String("id", session.ID()), zap.String("path", session.Path()))
		s.session = session
	}
	return s
}

func applyUI(cfg *config.Config, noColor bool) {
	switch cfg.UI.NerdFonts {
	case config.NerdFontsOn:
		icons.SetNerdFonts(true)
	case config.NerdFontsOff:
		icons.SetNerdFonts(false)
	}
	if noColor || cfg.UI.NoColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func loadContent(cfg *config.Config) (*content.Content, error) {
	if cfg.Content.Path == "" {
		return content.Default()
	}
	return content.Load(cfg.Content.Path)
}

func run(opts options, stdout io.Writer) error {
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Long())
		return nil
	}

	path := opts.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := debug.Init(cfg.Log.Path, cfg.Log.Level)
	defer logger.Close()
	debug.Log().Info("starting", zap.String("version", version.Short()), zap.Stringer("config", cfg))

	c, err := loadContent(cfg)
	if err != nil {
		return err
	}
	applyUI(cfg, opts.noColor)

	st := openStores(cfg)
	defer st.Close()

	themePref := prefs.NewThemePreference(st.durable)
	visits := prefs.NewVisitFlag(st.session)

	if opts.theme != "" {
		t, ok := prefs.ParseTheme(opts.theme)
		if !ok {
			return fmt.Errorf("invalid --theme %q: must be dark or light", opts.theme)
		}
		if err := themePref.Write(t); err != nil {
			debug.Log().Warn("saving theme", zap.Error(err))
		}
	}
	if opts.resetIntro {
		if err := visits.Reset(); err != nil {
			debug.Log().Warn("resetting intro", zap.Error(err))
		}
	}

	interactive := false
	if f, ok := stdout.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
	}
	if opts.print || !interactive {
		width := printWidth
		if f, ok := stdout.(*os.File); ok {
			if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
				width = w
			}
		}
		_, err := io.WriteString(stdout, app.RenderStatic(c, themePref.Read(), width))
		return err
	}

	model := app.New(app.Options{
		Content: c,
		Theme:   themePref,
		Visits:  visits,
		Timing:  cfg.Timing,
		MaxStep: cfg.Intro.MaxStep,
		LogPath: logger.Path(),
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", err)
	}
	debug.Log().Info("exiting", zap.Stringer("state", model))
	return nil
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "A personal portfolio in your terminal",
		Long: `folio renders a single-page portfolio, with an about section, skills,
projects and contact details, as a scrollable terminal page.

Hover the ⋮ in the top-right corner to open the section menu.
Hover a project card to play its screenshots.
Press ? for help once running.

Examples:
  folio                 # Open the portfolio
  folio --theme dark    # Switch to the dark theme and remember it
  folio --print | less  # Print the page without the interactive UI`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts, stdout)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default ~/.folio/config.yml)")
	flags.StringVar(&opts.theme, "theme", "", "Set the theme (dark or light) and remember it")
	flags.BoolVar(&opts.resetIntro, "reset-intro", false, "Show the loading intro again in this session")
	flags.BoolVar(&opts.print, "print", false, "Print the page to stdout and exit")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colors")
	flags.BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")
	return rootCmd
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
