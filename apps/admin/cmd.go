package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/evaldez/assignment-tracker/core"
	"github.com/evaldez/assignment-tracker/core/assignment"
	"github.com/evaldez/assignment-tracker/services/spreadsheet"
)

var (
	openSheetFunc   = spreadsheet.Open // mockable
	createSheetFunc = func(path string) (io.WriteCloser, error) { return os.Create(path) }

	errHelp = errors.New("help provided")
)

type assignmentService interface {
	spreadsheet.Store
	ListPending(ctx context.Context) ([]assignment.Assignment, error)
	ListCompleted(ctx context.Context) ([]assignment.Assignment, error)
	MarkComplete(ctx context.Context, id int) (int64, error)
}

type commandLine struct {
	svc    assignmentService
	logger core.Logger
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  import -file PATH [-sheet NAME]                - import assignments from a workbook")
	_, _ = fmt.Fprintln(cli.out, "  export -file PATH [-sheet NAME] [-completed]   - write assignments to a workbook")
	_, _ = fmt.Fprintln(cli.out, "  pending                                        - list pending assignments")
	_, _ = fmt.Fprintln(cli.out, "  completed                                      - list completed assignments")
	_, _ = fmt.Fprintln(cli.out, "  complete -id ID                                - mark an assignment as completed")
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	importCmd := cli.newFlagSet("import")
	importFile := importCmd.String("file", "", "The .xlsx workbook to import.")
	importSheet := importCmd.String("sheet", "", "The sheet to read (default: first sheet).")

	exportCmd := cli.newFlagSet("export")
	exportFile := exportCmd.String("file", "", "The .xlsx workbook to write.")
	exportSheet := exportCmd.String("sheet", "Assignments", "The sheet name.")
	exportCompleted := exportCmd.Bool("completed", false, "Export completed assignments instead of pending ones.")

	completeCmd := cli.newFlagSet("complete")
	completeID := completeCmd.Int("id", 0, "The assignment ID.")

	switch args[1] {
	case "import":
		if err := importCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *importFile == "" {
			importCmd.Usage()
			return errHelp
		}
		return cli.importSheet(ctx, *importFile, *importSheet)
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportFile == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.exportSheet(ctx, *exportFile, *exportSheet, *exportCompleted)
	case "pending":
		return cli.list(ctx, false)
	case "completed":
		return cli.list(ctx, true)
	case "complete":
		if err := completeCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *completeID == 0 {
			completeCmd.Usage()
			return errHelp
		}
		return cli.complete(ctx, *completeID)
	default:
		cli.printUsage()
		return errHelp
	}
}
