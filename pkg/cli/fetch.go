package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/gedphotos/gedphotos/pkg/cli/config"
	"github.com/gedphotos/gedphotos/pkg/infra/cdn"
	"github.com/gedphotos/gedphotos/pkg/usecase"
)

func cmdFetch() *cli.Command {
	var fetchCfg config.Fetch

	return &cli.Command{
		Name:      "fetch",
		Aliases:   []string{"f"},
		Usage:     "Download photos referenced by a GEDCOM file",
		ArgsUsage: "<file.ged>",
		Flags:     fetchCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			gedPath := c.Args().First()
			if gedPath == "" {
				return goerr.New("GEDCOM file path is required")
			}

			if err := fetchCfg.LoadFile(c); err != nil {
				return err
			}

			logger.Info("Starting photo fetch",
				slog.String("path", gedPath),
				slog.String("output", fetchCfg.Output),
			)

			// Create CDN client and use case
			cdnClient := cdn.NewClient(
				cdn.WithTimeout(fetchCfg.Timeout),
				cdn.WithUserAgent(fetchCfg.UserAgent),
			)
			fetchUC := usecase.NewFetch(cdnClient)

			report, err := fetchUC.Fetch(ctx, gedPath, fetchCfg.Output)
			if err != nil {
				return goerr.Wrap(err, "failed to fetch photos", goerr.V("path", gedPath))
			}

			// Per-item failures are already logged by the use case; the run
			// itself succeeds as long as the input was readable.
			logger.Info("Photo fetch finished",
				slog.Int("refs", report.Refs),
				slog.Int("downloaded", report.Downloaded),
				slog.Int("failed", len(report.Failures)),
			)
			return nil
		},
	}
}
