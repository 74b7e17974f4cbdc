package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/evaldez/assignment-tracker/services/spreadsheet"
)

func (cli *commandLine) importSheet(ctx context.Context, path, sheet string) error {
	r, err := openSheetFunc(path)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	sum, err := spreadsheet.NewImporter(cli.svc, cli.logger).Import(ctx, r, sheet)
	if err != nil {
		return errors.Wrapf(err, "importing %s", path)
	}
	_, _ = fmt.Fprintf(cli.out, "Import finished: %s\n", sum)
	return nil
}

func (cli *commandLine) exportSheet(ctx context.Context, path, sheet string, completed bool) (err error) {
	list, err := cli.listAssignments(ctx, completed)
	if err != nil {
		return err
	}

	w, err := createSheetFunc(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer func() {
		if cErr := w.Close(); cErr != nil && err == nil {
			err = errors.Wrapf(cErr, "closing %s", path)
		}
	}()

	if err = spreadsheet.Write(w, sheet, list); err != nil {
		return errors.Wrapf(err, "exporting to %s", path)
	}
	_, _ = fmt.Fprintf(cli.out, "%d assignments exported to %s\n", len(list), path)
	return nil
}
