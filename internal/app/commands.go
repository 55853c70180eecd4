package app

import (
	"fmt"
	"github.com/gostonefire/bookshelf/catalog"
	"github.com/gostonefire/bookshelf/internal/menu"
	"github.com/gostonefire/bookshelf/internal/output"
	"github.com/gostonefire/bookshelf/sorts"
	"github.com/spf13/cobra"
)

// NewShellCommand creates the shell command, the same as running bookshelf without a subcommand.
func (a *App) NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		RunE:  a.runShell,
	}
}

func (a *App) runShell(cmd *cobra.Command, _ []string) error {
	c, err := a.Catalog()
	if err != nil {
		return err
	}
	field, algorithm, err := a.SortDefaults()
	if err != nil {
		return err
	}

	format, err := parseFormat(a.config.Format)
	if err != nil {
		return err
	}
	// The shell defaults to a table whatever the terminal
	if format == "" {
		format = output.FormatTable
	}

	shell := menu.New(c, a.in, a.out, menu.Options{
		Format:           format,
		DefaultField:     field,
		DefaultAlgorithm: algorithm,
		Prompt:           "> ",
		Logger:           a.logger,
	})

	return shell.Run(cmd.Context())
}

// NewListCommand creates the list command.
func (a *App) NewListCommand() *cobra.Command {
	var sortField, algorithmName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all books",
		Example: `  bookshelf list
  bookshelf list --sort year --algorithm insertion -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.Catalog()
			if err != nil {
				return err
			}
			field, algorithm, err := a.SortDefaults()
			if err != nil {
				return err
			}
			if sortField != "" {
				if field, err = catalog.ParseField(sortField); err != nil {
					return err
				}
			}
			if algorithmName != "" {
				if algorithm, err = sorts.ParseAlgorithm(algorithmName); err != nil {
					return err
				}
			}

			return a.render(c.SortBooks(field, algorithm))
		},
	}

	cmd.Flags().StringVar(&sortField, "sort", "", "sort field: title, author, year")
	cmd.Flags().StringVar(&algorithmName, "algorithm", "", "sort algorithm: bubble, merge, insertion, builtin")

	return cmd
}

// NewFindCommand creates the find command.
func (a *App) NewFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <title>",
		Short: "Find a book by its exact title, ignoring case",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := a.Catalog()
			if err != nil {
				return err
			}
			book, err := c.FindExactByTitle(args[0])
			if err != nil {
				return err
			}

			return a.render([]*catalog.Book{book})
		},
	}
}

// NewSearchCommand creates the search command.
func (a *App) NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search books whose title, author or year contain query",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := a.Catalog()
			if err != nil {
				return err
			}
			books := c.Search(args[0])
			sorts.Sort(sorts.Merge, books, catalog.CompareTitle)

			return a.render(books)
		},
	}
}

// NewStatCommand creates the stat command.
func (a *App) NewStatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stat",
		Short: "Show hash table statistics of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := a.Catalog()
			if err != nil {
				return err
			}

			return a.render(menu.Stats(c))
		},
	}
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bookshelf %s (commit %s, built %s)\n", a.version, a.commit, a.date)
			return err
		},
	}
}

// render writes data in the configured format, auto-detected from the output when not set.
func (a *App) render(data any) error {
	format := output.DetectFormat(a.config.Format, a.out)
	return output.NewFormatter(format).Format(a.out, data)
}

// parseFormat validates a configured output format.
func parseFormat(s string) (output.Format, error) {
	format, err := output.ParseFormat(s)
	if err != nil {
		return "", fmt.Errorf("format: %w", err)
	}
	return format, nil
}
