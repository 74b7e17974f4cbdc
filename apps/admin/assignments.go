package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/evaldez/assignment-tracker/core/assignment"
)

func (cli *commandLine) listAssignments(ctx context.Context, completed bool) ([]assignment.Assignment, error) {
	if completed {
		return cli.svc.ListCompleted(ctx)
	}
	return cli.svc.ListPending(ctx)
}

func (cli *commandLine) list(ctx context.Context, completed bool) error {
	list, err := cli.listAssignments(ctx, completed)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tDUE DATE\tCOURSE\tNAME\tTYPE")
	for _, a := range list {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", a.ID, a.DueDate, a.Course, a.Name, a.Type)
	}
	return tw.Flush()
}

func (cli *commandLine) complete(ctx context.Context, id int) error {
	changes, err := cli.svc.MarkComplete(ctx, id)
	if err != nil {
		return err
	}
	if changes == 0 {
		_, _ = fmt.Fprintf(cli.out, "Assignment %d not found or already completed\n", id)
		return nil
	}
	_, _ = fmt.Fprintf(cli.out, "Assignment %d marked as completed\n", id)
	return nil
}
