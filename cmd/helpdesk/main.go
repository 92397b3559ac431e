package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"helpdesk/internal/config"
	"helpdesk/internal/debug"
	appErrors "helpdesk/internal/errors"
	"helpdesk/internal/helpdesk"
	"helpdesk/internal/session"
	"helpdesk/internal/ui"
	"helpdesk/internal/ui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	c := newCLI(os.Stdin, os.Stdout, os.Stderr)
	if err := c.rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", appErrors.UserMessage(err, err.Error()))
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

// cli carries the wiring shared by every subcommand. The factories are
// swapped out in tests.
type cli struct {
	in     *bufio.Reader
	stdin  *os.File
	out    io.Writer
	errOut io.Writer

	newClient    func(baseURL string, opts ...helpdesk.Option) helpdesk.Client
	newStore     func(path string) (session.Store, error)
	newProgram   func(*ui.App) programRunner
	readPassword func(prompt string) (string, error)
	confirm      func(title, description string) (bool, error)

	debugFlag   bool
	apiURL      string
	sessionPath string

	sess    *session.Session
	client  helpdesk.Client
	timeout time.Duration
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli {
	c := &cli{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		newClient: func(baseURL string, opts ...helpdesk.Option) helpdesk.Client {
			return helpdesk.NewClient(baseURL, opts...)
		},
		newStore: func(path string) (session.Store, error) {
			return session.NewSQLiteStore(path)
		},
		newProgram: func(app *ui.App) programRunner {
			return tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
		},
	}
	if f, ok := in.(*os.File); ok {
		c.stdin = f
	}
	c.readPassword = c.promptPassword
	c.confirm = c.promptConfirm
	return c
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "helpdesk",
		Short: "Terminal client for the helpdesk ticketing service",
		Long: `helpdesk talks to the helpdesk REST backend.

Run without a subcommand to open the ticket dashboard. Sign in first with
"helpdesk login"; the token is kept in the session store until you log out
or it expires.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) { debug.Close() },
	}
	root.PersistentFlags().BoolVar(&c.debugFlag, "debug", false, "Write a debug log to ~/.helpdesk/debug.log")
	root.PersistentFlags().StringVar(&c.apiURL, "api-url", "", "Backend base URL (overrides api.base-url)")
	root.PersistentFlags().StringVar(&c.sessionPath, "session-path", "", "Session database path (overrides session.path)")

	dashboard := c.dashboardCmd()
	root.RunE = dashboard.RunE
	root.Flags().AddFlagSet(dashboard.Flags())

	root.AddCommand(
		dashboard,
		c.loginCmd(),
		c.signupCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.ticketsCmd(),
		versionCmd(c),
	)
	return root
}

// setup loads configuration and builds the session and backend client.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Initialize(); err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, "load configuration", err)
	}

	overrides := map[string]any{}
	if cmd.Flags().Changed("api-url") {
		overrides[config.KeyAPIBaseURL] = strings.TrimSpace(c.apiURL)
	}
	if cmd.Flags().Changed("session-path") {
		overrides[config.KeySessionPath] = strings.TrimSpace(c.sessionPath)
	}
	if cmd.Flags().Changed("debug") {
		overrides[config.KeyDebug] = c.debugFlag
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, "apply flags", err)
	}

	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		fmt.Fprintf(c.errOut, "Warning: debug log disabled: %v\n", err)
	}
	if name := config.GetString(config.KeyTheme); name != "" && !theme.SetTheme(name) {
		debug.Logf("unknown theme %q, keeping %s", name, theme.CurrentName())
	}

	store, err := c.newStore(config.GetString(config.KeySessionPath))
	if err != nil {
		return err
	}
	c.sess = session.New(store)
	c.timeout = config.APITimeout()
	c.client = c.newClient(config.GetString(config.KeyAPIBaseURL),
		helpdesk.WithTimeout(c.timeout),
		helpdesk.WithTokenSource(c.sess),
		helpdesk.WithLogger(debug.Logger()),
	)
	debug.Logf("backend %s, session %s", config.GetString(config.KeyAPIBaseURL), config.GetString(config.KeySessionPath))
	return nil
}

func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.timeout)
}

// prompt reads one line, printing label first. EOF with no input is an error.
func (c *cli) prompt(label string) (string, error) {
	fmt.Fprint(c.errOut, label)
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.TrimSpace(label), ":"), err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password with echo disabled on a terminal, or a
// plain line when stdin is piped.
func (c *cli) promptPassword(label string) (string, error) {
	if !c.interactive() {
		return c.prompt(label)
	}
	fmt.Fprint(c.errOut, label)
	b, err := term.ReadPassword(int(c.stdin.Fd()))
	fmt.Fprintln(c.errOut)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

func (c *cli) interactive() bool {
	return c.stdin != nil && term.IsTerminal(int(c.stdin.Fd()))
}

// promptConfirm asks a yes/no question. Without a terminal there is nobody
// to ask, so the answer is an error rather than a guess.
func (c *cli) promptConfirm(title, description string) (bool, error) {
	if !c.interactive() {
		return false, fmt.Errorf("%s: no terminal to confirm on (pass --yes)", title)
	}
	var confirmed bool
	form := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
