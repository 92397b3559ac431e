package main

import (
	"fmt"
	"io"
	"strconv"

	"helpdesk/internal/domain"
	appErrors "helpdesk/internal/errors"
	"helpdesk/internal/helpdesk"
	"helpdesk/internal/tickets"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func (c *cli) ticketsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tickets",
		Aliases: []string{"t"},
		Short:   "List, create, edit and delete tickets",
	}
	cmd.AddCommand(c.ticketsListCmd(), c.ticketsCreateCmd(), c.ticketsEditCmd(), c.ticketsDeleteCmd())
	return cmd
}

func (c *cli) ticketsListCmd() *cobra.Command {
	var (
		search  string
		sortBy  string
		desc    bool
		entries string
		typ     string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the ticket table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := tickets.DefaultState()
			st.Search = search

			key, err := tickets.ParseSortKey(sortBy)
			if err != nil {
				return err
			}
			st.Sort = tickets.Sort{Key: key, Direction: tickets.Ascending}
			if desc {
				if !st.Sort.Active() {
					return fmt.Errorf("--desc needs --sort type, status or priority")
				}
				st.Sort.Direction = tickets.Descending
			}
			if st.Entries, err = tickets.ParseEntries(entries); err != nil {
				return err
			}
			if st.Type, err = tickets.ParseTypeFilter(typ); err != nil {
				return err
			}

			mgr := tickets.NewManager(c.client)
			ctx, cancel := c.context(cmd)
			defer cancel()
			if err := mgr.Load(ctx); err != nil {
				return err
			}
			mgr.State = st
			printTickets(c.out, mgr.Displayed(), mgr.Counts())
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "Only titles containing this text")
	cmd.Flags().StringVar(&sortBy, "sort", "id", "Sort column: id, type, status or priority")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending (type, status or priority only)")
	cmd.Flags().StringVarP(&entries, "entries", "n", "all", "Rows to show: a number or all")
	cmd.Flags().StringVar(&typ, "type", "all", "Ticket type: all, service or asset")
	return cmd
}

func (c *cli) ticketsCreateCmd() *cobra.Command {
	var (
		typ      string
		category string
		priority string
		req      helpdesk.CreateTicketRequest
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new ticket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if req.Type, err = domain.ParseTicketType(typ); err != nil {
				return err
			}
			if req.Priority, err = domain.ParsePriority(priority); err != nil {
				return err
			}
			req.Category = category
			if req.Category == "" {
				if cats := domain.Categories(req.Type); len(cats) > 0 {
					req.Category = cats[0]
				}
			}

			mgr := tickets.NewManager(c.client)
			ctx, cancel := c.context(cmd)
			defer cancel()
			t, err := mgr.Create(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Created ticket #%d: %s\n", t.ID, t.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&typ, "type", string(domain.TypeService), "Ticket type: Service or Asset")
	cmd.Flags().StringVar(&category, "category", "", "Category (defaults to the first for the type)")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityLow), "Priority: Low, Medium or High")
	cmd.Flags().StringVar(&req.Title, "title", "", "Short summary")
	cmd.Flags().StringVar(&req.Description, "description", "", "What happened")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("description")
	return cmd
}

func (c *cli) ticketsDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTicketID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				ok, err := c.confirm(fmt.Sprintf("Delete ticket #%d?", id), "This action cannot be undone.")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(c.out, "Cancelled.")
					return nil
				}
			}
			mgr := tickets.NewManager(c.client)
			ctx, cancel := c.context(cmd)
			defer cancel()
			if err := mgr.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Deleted ticket #%d.\n", id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func (c *cli) ticketsEditCmd() *cobra.Command {
	var title, description string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a ticket's title or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTicketID(args[0])
			if err != nil {
				return err
			}
			titleSet, descSet := cmd.Flags().Changed("title"), cmd.Flags().Changed("description")
			if !titleSet && !descSet {
				return fmt.Errorf("nothing to change: pass --title or --description")
			}

			mgr := tickets.NewManager(c.client)
			ctx, cancel := c.context(cmd)
			defer cancel()
			if err := mgr.Load(ctx); err != nil {
				return err
			}
			if !mgr.OpenEditByID(id) {
				return appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("ticket #%d not found", id), nil)
			}
			staged, _ := mgr.Edit().Staged()
			if titleSet {
				staged.Title = title
			}
			if descSet {
				staged.Description = description
			}
			mgr.StageText(staged.Title, staged.Description)

			t, err := mgr.CommitEdit(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "Updated ticket #%d: %s\n", t.ID, t.Title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New summary")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	return cmd
}

func parseTicketID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("ticket id must be a positive number, got %q", raw)
	}
	return id, nil
}

// printTickets writes the rows as a bordered table followed by the counters.
func printTickets(w io.Writer, rows []domain.Ticket, counts domain.Counts) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No tickets.")
	} else {
		data := make([][]string, 0, len(rows))
		for _, t := range rows {
			resp := t.Response()
			if resp == "" {
				resp = "-"
			}
			data = append(data, []string{
				strconv.Itoa(t.ID),
				string(t.Type),
				t.Title,
				string(t.Status),
				string(t.Priority),
				resp,
			})
		}
		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("ID", "TYPE", "TITLE", "STATUS", "PRIORITY", "AGENT RESPONSE").
			Rows(data...)
		fmt.Fprintln(w, tbl.String())
	}
	fmt.Fprintf(w, "Open %d · In Progress %d · Resolved %d · Unresolved %d · Total %d\n",
		counts.Open, counts.InProgress, counts.Resolved, counts.Unresolved, counts.Total)
}
