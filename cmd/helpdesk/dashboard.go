package main

import (
	"fmt"

	"helpdesk/internal/config"
	"helpdesk/internal/session"
	"helpdesk/internal/tickets"
	"helpdesk/internal/ui"

	"github.com/spf13/cobra"
)

func (c *cli) dashboardCmd() *cobra.Command {
	var (
		view         string
		entries      string
		outputFormat string
	)
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the ticket dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !c.sess.LoggedIn(cmd.Context()) {
				return session.ErrNoToken
			}

			if !cmd.Flags().Changed("view") {
				view = config.GetString(config.KeyDashboardView)
			}
			if !cmd.Flags().Changed("output-format") {
				outputFormat = config.GetString(config.KeyOutputFormat)
			}
			n := tickets.Entries(config.GetInt(config.KeyDashboardEntries))
			if cmd.Flags().Changed("entries") {
				var err error
				if n, err = tickets.ParseEntries(entries); err != nil {
					return err
				}
			}

			user := ""
			if claims, err := c.sess.Claims(cmd.Context()); err == nil && claims.Subject != "" {
				user = "user " + claims.Subject
			}

			ui.ApplyOutputFormat(outputFormat)
			app, err := ui.NewApp(ui.Config{
				Client:       c.client,
				View:         view,
				Entries:      n,
				OutputFormat: outputFormat,
				Timeout:      c.timeout,
				Version:      Version,
				User:         user,
				SaveTheme:    config.SaveTheme,
			})
			if err != nil {
				return err
			}
			return runProgram(c.newProgram(app))
		},
	}
	cmd.Flags().StringVar(&view, "view", ui.ViewUser, "Dashboard variant: user or agent")
	cmd.Flags().StringVar(&entries, "entries", "", "Initial rows to show: 5, 10, 15 or all")
	cmd.Flags().StringVar(&outputFormat, "output-format", "", "Detail markdown style (rich, light, plain)")
	return cmd
}

func runProgram(prog programRunner) error {
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}
