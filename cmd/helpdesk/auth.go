package main

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/helpdesk"
	"helpdesk/internal/session"

	"github.com/spf13/cobra"
)

func (c *cli) loginCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if strings.TrimSpace(email) == "" {
				if email, err = c.prompt("Email: "); err != nil {
					return err
				}
			}
			password, err := c.readPassword("Password: ")
			if err != nil {
				return err
			}
			ctx, cancel := c.context(cmd)
			defer cancel()
			if err := c.sess.Login(ctx, c.client, email, password); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Logged in as %s.\n", strings.TrimSpace(email))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email (prompted when empty)")
	return cmd
}

func (c *cli) signupCmd() *cobra.Command {
	var req helpdesk.SignupRequest
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if strings.TrimSpace(req.Username) == "" {
				if req.Username, err = c.prompt("Username: "); err != nil {
					return err
				}
			}
			if strings.TrimSpace(req.Email) == "" {
				if req.Email, err = c.prompt("Email: "); err != nil {
					return err
				}
			}
			if req.Password, err = c.readPassword("Password: "); err != nil {
				return err
			}
			ctx, cancel := c.context(cmd)
			defer cancel()
			user, err := c.client.Signup(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Account created for %s (%s). Run `helpdesk login` to sign in.\n", user.Email, user.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Username, "username", "", "Display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Account email")
	cmd.Flags().StringVar(&req.Role, "role", "", "Account role (defaults to "+helpdesk.DefaultRole+")")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.sess.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Logged out.")
			return nil
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show who the stored token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			claims, err := c.sess.Claims(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(c.out, describeClaims(claims))
			return nil
		},
	}
}

func describeClaims(claims session.Claims) string {
	var b strings.Builder
	if claims.Subject == "" {
		b.WriteString("Logged in.\n")
	} else {
		fmt.Fprintf(&b, "Logged in as user %s.\n", claims.Subject)
	}
	if !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(&b, "Token expires %s.\n", claims.ExpiresAt.Local().Format(time.RFC1123))
	}
	return b.String()
}
