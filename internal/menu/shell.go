// Package menu is the interactive catalog shell. Every line is one command in CMD(arg,...) form, see Help.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/gostonefire/bookshelf/catalog"
	"github.com/gostonefire/bookshelf/internal/output"
	"github.com/gostonefire/bookshelf/keyedtable"
	"github.com/gostonefire/bookshelf/sorts"
	"github.com/rs/zerolog"
	"io"
	"strconv"
)

// Help - Command reference printed by HELP
const Help = `Commands:
  REGISTER(username,password)    register and log in
  LOGIN(username,password)       log in
  LOGOUT                         log out
  WHOAMI                         show the logged in user
  ADD(title,author,year)         add a book (login required)
  LIST                           list books in the default order
  LIST(field[,algorithm])        list books ordered by title, author or year
                                 using bubble, merge, insertion or builtin
  SEARCH(query)                  books whose title, author or year contain query
  FIND(title)                    exact title lookup ignoring case
  BORROW(title)                  borrow a book (login required)
  RETURN(title)                  return a borrowed book (login required)
  STAT                           hash table statistics
  HELP                           this text
  EXIT | QUIT                    leave the shell
Arguments containing commas are double quoted: ADD("Dune, Messiah",Frank Herbert,1969)
`

// Options - Shell settings, Go zero values give the defaults
//   - Format is the output format for listings, default output.FormatTable
//   - DefaultField orders LIST without arguments, default catalog.ByTitle
//   - DefaultAlgorithm sorts when LIST names no algorithm, default sorts.Builtin
//   - Prompt is written before every command when not empty
//   - Logger receives a debug event per command, default is a disabled logger
type Options struct {
	Format           output.Format
	DefaultField     catalog.Field
	DefaultAlgorithm sorts.Algorithm
	Prompt           string
	Logger           *zerolog.Logger
}

// Shell - Reads commands from an io.Reader and writes results to an io.Writer. The logged in user, if any, is
// held by the shell as a catalog session.
type Shell struct {
	catalog          *catalog.Catalog
	in               io.Reader
	out              io.Writer
	format           output.Format
	formatter        output.Formatter
	defaultField     catalog.Field
	defaultAlgorithm sorts.Algorithm
	prompt           string
	session          *catalog.Session
	logger           zerolog.Logger
}

// TableStat - Statistics of one catalog hash table flattened for output
type TableStat struct {
	Table        string  `json:"table" yaml:"table"`
	Technique    string  `json:"technique" yaml:"technique"`
	Records      int64   `json:"records" yaml:"records"`
	Buckets      int64   `json:"buckets" yaml:"buckets"`
	Tombstones   int64   `json:"tombstones" yaml:"tombstones"`
	Grows        int64   `json:"grows" yaml:"grows"`
	LongestChain int64   `json:"longest_chain" yaml:"longest_chain"`
	Load         float64 `json:"load" yaml:"load"`
}

// New - Returns a shell over c reading from in and writing to out
func New(c *catalog.Catalog, in io.Reader, out io.Writer, opts Options) *Shell {
	S := &Shell{
		catalog:          c,
		in:               in,
		out:              out,
		format:           opts.Format,
		defaultField:     opts.DefaultField,
		defaultAlgorithm: opts.DefaultAlgorithm,
		prompt:           opts.Prompt,
		logger:           zerolog.Nop(),
	}
	if S.format == "" {
		S.format = output.FormatTable
	}
	if S.defaultField == 0 {
		S.defaultField = catalog.ByTitle
	}
	if opts.Logger != nil {
		S.logger = *opts.Logger
	}
	S.formatter = output.NewFormatter(S.format)

	return S
}

// Session - Returns the session of the logged in user or nil
func (S *Shell) Session() *catalog.Session {
	return S.session
}

// Run - Executes commands until EXIT, end of input or cancellation of ctx. Reading happens in its own
// goroutine so a cancelled ctx ends the loop even while waiting for input.
func (S *Shell) Run(ctx context.Context) error {
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(S.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-readCtx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	S.printf("Bookshelf ready, %d books. Type HELP for commands.\n", S.catalog.Len())

	for {
		S.printf("%s", S.prompt)

		select {
		case <-ctx.Done():
			S.printf("\n")
			S.logger.Debug().Err(ctx.Err()).Msg("shell cancelled")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				return nil
			}
			if quit := S.Execute(line); quit {
				return nil
			}
		}
	}
}

// Execute - Runs one command line and reports whether the shell should stop
func (S *Shell) Execute(line string) (quit bool) {
	call, err := ParseCall(line)
	if err != nil {
		S.printf("parse error: %s\n", err)
		return
	}
	if call.Name == "" {
		return
	}

	S.logger.Debug().Str("command", call.Name).Int("args", len(call.Args)).Msg("command")

	switch call.Name {
	case "EXIT", "QUIT":
		quit = true
	case "HELP":
		S.printf("%s", Help)
	case "REGISTER":
		S.register(call.Args)
	case "LOGIN":
		S.login(call.Args)
	case "LOGOUT":
		S.logout(call.Args)
	case "WHOAMI":
		S.whoami(call.Args)
	case "ADD":
		S.add(call.Args)
	case "LIST":
		S.list(call.Args)
	case "SEARCH":
		S.search(call.Args)
	case "FIND":
		S.find(call.Args)
	case "BORROW":
		S.borrow(call.Args)
	case "RETURN":
		S.giveBack(call.Args)
	case "STAT":
		S.stat(call.Args)
	default:
		S.printf("unknown command %s, type HELP for commands\n", call.Name)
	}

	return
}

func (S *Shell) register(args []string) {
	if len(args) != 2 {
		S.printf("usage: REGISTER(username,password)\n")
		return
	}
	if err := S.catalog.Register(args[0], args[1]); err != nil {
		S.printError(err)
		return
	}
	S.printf("user %s registered\n", args[0])
	S.login(args)
}

func (S *Shell) login(args []string) {
	if len(args) != 2 {
		S.printf("usage: LOGIN(username,password)\n")
		return
	}
	session, err := S.catalog.Login(args[0], args[1])
	if err != nil {
		S.printError(err)
		return
	}
	S.session = session
	S.printf("welcome, %s\n", session.Username)
}

func (S *Shell) logout(args []string) {
	if len(args) != 0 {
		S.printf("usage: LOGOUT\n")
		return
	}
	if S.session == nil {
		S.printError(catalog.NotLoggedIn{})
		return
	}
	S.printf("goodbye, %s\n", S.session.Username)
	S.session = nil
}

func (S *Shell) whoami(args []string) {
	if len(args) != 0 {
		S.printf("usage: WHOAMI\n")
		return
	}
	if S.session == nil {
		S.printf("not logged in\n")
		return
	}
	S.printf("%s (session %s)\n", S.session.Username, S.session.ID)
}

func (S *Shell) add(args []string) {
	if len(args) != 3 {
		S.printf("usage: ADD(title,author,year)\n")
		return
	}
	if S.session == nil {
		S.printError(catalog.NotLoggedIn{})
		return
	}
	year, err := strconv.Atoi(args[2])
	if err != nil {
		S.printError(catalog.NewInvalidInput(fmt.Sprintf("year %q is not a number", args[2])))
		return
	}
	book, err := S.catalog.AddBook(args[0], args[1], year)
	if err != nil {
		S.printError(err)
		return
	}
	S.printf("added %s\n", book)
}

func (S *Shell) list(args []string) {
	if len(args) > 2 {
		S.printf("usage: LIST or LIST(field[,algorithm])\n")
		return
	}

	field := S.defaultField
	algorithm := S.defaultAlgorithm
	if len(args) > 0 {
		var err error
		if field, err = catalog.ParseField(args[0]); err != nil {
			S.printError(err)
			return
		}
	}
	if len(args) > 1 {
		var err error
		if algorithm, err = sorts.ParseAlgorithm(args[1]); err != nil {
			S.logger.Warn().Err(err).Msg("sort algorithm")
			S.printf("%s\n", err)
		}
	}

	books := S.catalog.SortBooks(field, algorithm)
	if len(books) == 0 {
		S.printf("no books in the catalog\n")
		return
	}
	S.render(books)
}

func (S *Shell) search(args []string) {
	if len(args) != 1 {
		S.printf("usage: SEARCH(query)\n")
		return
	}
	books := S.catalog.Search(args[0])
	if len(books) == 0 {
		S.printf("no books found\n")
		return
	}
	sorts.Sort(sorts.Merge, books, catalog.CompareTitle)
	S.render(books)
}

func (S *Shell) find(args []string) {
	if len(args) != 1 {
		S.printf("usage: FIND(title)\n")
		return
	}
	book, err := S.catalog.FindExactByTitle(args[0])
	if err != nil {
		S.printError(err)
		return
	}
	S.render([]*catalog.Book{book})
}

func (S *Shell) borrow(args []string) {
	if len(args) != 1 {
		S.printf("usage: BORROW(title)\n")
		return
	}
	book, err := S.catalog.Borrow(S.session, args[0])
	if err != nil {
		S.printError(err)
		return
	}
	S.printf("borrowed %s\n", book)
}

func (S *Shell) giveBack(args []string) {
	if len(args) != 1 {
		S.printf("usage: RETURN(title)\n")
		return
	}
	book, err := S.catalog.Return(S.session, args[0])
	if err != nil {
		S.printError(err)
		return
	}
	S.printf("returned %s\n", book)
}

func (S *Shell) stat(args []string) {
	if len(args) != 0 {
		S.printf("usage: STAT\n")
		return
	}
	S.render(Stats(S.catalog))
}

// Stats - Returns the statistics of the book and the user table of c
func Stats(c *catalog.Catalog) []TableStat {
	books, users := c.Stat(false)
	return []TableStat{newTableStat("books", books), newTableStat("users", users)}
}

func newTableStat(table string, stat *keyedtable.HashMapStat) TableStat {
	return TableStat{
		Table:        table,
		Technique:    stat.CollisionResolutionTechnique,
		Records:      stat.Records,
		Buckets:      stat.NumberOfBuckets,
		Tombstones:   stat.Tombstones,
		Grows:        stat.Grows,
		LongestChain: stat.LongestChain,
		Load:         stat.Load,
	}
}

func (S *Shell) render(data any) {
	if err := S.formatter.Format(S.out, data); err != nil {
		S.logger.Error().Err(err).Msg("rendering output")
		S.printf("error: %s\n", err)
	}
}

func (S *Shell) printError(err error) {
	var invalid catalog.InvalidInput
	if errors.As(err, &invalid) {
		S.printf("invalid input: %s\n", err)
		return
	}
	S.printf("error: %s\n", err)
}

func (S *Shell) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(S.out, format, a...)
}
