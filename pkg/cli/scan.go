package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/gedphotos/gedphotos/pkg/usecase"
)

func cmdScan() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "List photo references in a GEDCOM file without downloading",
		ArgsUsage: "<file.ged>",
		Action: func(ctx context.Context, c *cli.Command) error {
			gedPath := c.Args().First()
			if gedPath == "" {
				return goerr.New("GEDCOM file path is required")
			}

			scanUC := usecase.NewScan()
			refs, err := scanUC.Scan(ctx, gedPath)
			if err != nil {
				return err
			}

			cyan := color.New(color.FgCyan).SprintFunc()
			for _, ref := range refs {
				fmt.Printf("%s\t%s\n", cyan(ref.FileName("")), ref.URL)
			}

			ctxlog.From(ctx).Info("Scan completed", "refs", len(refs))
			return nil
		},
	}
}
