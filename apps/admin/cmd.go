package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/nkminh14/uniconsole/core"
	"github.com/nkminh14/uniconsole/core/listing"
	"github.com/nkminh14/uniconsole/storage"
)

var (
	isTerminalFunc = term.IsTerminal // mockable
	readLineFunc   = readLine        // mockable

	errHelp         = errors.New("help provided")
	errNoTerminal   = errors.New("refusing to delete without -yes: input is not a terminal")
	errNotConfirmed = errors.New("deletion cancelled")
)

type commandLine struct {
	svcs     storage.Services
	tables   []table
	exporter core.Exporter
	out      io.Writer
}

func newCommandLine(svcs storage.Services, exporter core.Exporter, out io.Writer) *commandLine {
	return &commandLine{
		svcs:     svcs,
		tables:   newTables(svcs),
		exporter: exporter,
		out:      out,
	}
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  list -entity NAME [-search Q -by FIELD -sort KEY -desc -page N] - list one page of records")
	fmt.Fprintln(cli.out, "  delete -entity NAME -id ID [-yes]                             - delete a record")
	fmt.Fprintln(cli.out, "  dashboard                                                     - print the overview figures")
	fmt.Fprintln(cli.out, "  export -entity NAME|all -o FILE                               - write records to a spreadsheet")
	fmt.Fprintln(cli.out, "Entities: "+strings.Join(slugs(cli.tables), ", "))
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	listCmd := cli.newFlagSet("list")
	listEntity := listCmd.String("entity", "", "The collection to list.")
	listSearch := listCmd.String("search", "", "Only keep records whose -by field contains this text.")
	listBy := listCmd.String("by", "", "The field searched; defaults to the first search field of the entity.")
	listSort := listCmd.String("sort", "", "The column to sort by.")
	listDesc := listCmd.Bool("desc", false, "Sort in descending order.")
	listPage := listCmd.Int("page", 1, "The page to show.")

	deleteCmd := cli.newFlagSet("delete")
	deleteEntity := deleteCmd.String("entity", "", "The collection holding the record.")
	deleteID := deleteCmd.Int("id", 0, "The ID of the record.")
	deleteYes := deleteCmd.Bool("yes", false, "Do not ask for confirmation.")

	dashboardCmd := cli.newFlagSet("dashboard")

	exportCmd := cli.newFlagSet("export")
	exportEntity := exportCmd.String("entity", "", `The collection to export, or "all" for one sheet per collection.`)
	exportOut := exportCmd.String("o", "", "The spreadsheet file to write.")

	switch args[1] {
	case "list":
		if err := listCmd.Parse(args[2:]); err != nil {
			return cli.flagError(err)
		}
		if *listEntity == "" {
			listCmd.Usage()
			return errHelp
		}
		tbl, err := cli.table(*listEntity)
		if err != nil {
			return err
		}
		q := listing.Query{Search: *listSearch, SearchBy: *listBy, SortBy: *listSort, Desc: *listDesc, Page: *listPage}
		return cli.list(ctx, tbl, q)

	case "delete":
		if err := deleteCmd.Parse(args[2:]); err != nil {
			return cli.flagError(err)
		}
		if *deleteEntity == "" || *deleteID <= 0 {
			deleteCmd.Usage()
			return errHelp
		}
		tbl, err := cli.table(*deleteEntity)
		if err != nil {
			return err
		}
		return cli.deleteRecord(ctx, tbl, *deleteID, *deleteYes)

	case "dashboard":
		if err := dashboardCmd.Parse(args[2:]); err != nil {
			return cli.flagError(err)
		}
		return cli.dashboard(ctx)

	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return cli.flagError(err)
		}
		if *exportEntity == "" || *exportOut == "" {
			exportCmd.Usage()
			return errHelp
		}
		tables := cli.tables
		if *exportEntity != "all" {
			tbl, err := cli.table(*exportEntity)
			if err != nil {
				return err
			}
			tables = []table{tbl}
		}
		return cli.export(ctx, tables, *exportOut)

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

// flagError maps -h to errHelp; the flag package already printed the problem.
func (cli *commandLine) flagError(err error) error {
	if err == flag.ErrHelp {
		return errHelp
	}
	return err
}

// table finds a collection by name, hinting at the closest one on a typo.
func (cli *commandLine) table(name string) (table, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, tbl := range cli.tables {
		if tbl.slug == key {
			return tbl, nil
		}
	}
	if s := suggest(key, slugs(cli.tables)); s != "" {
		return table{}, errors.Errorf("unknown entity %q, did you mean %q?", name, s)
	}
	return table{}, errors.Errorf("unknown entity %q, expected one of: %s", name, strings.Join(slugs(cli.tables), ", "))
}

func readLine() (string, error) {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}
