package usecase

import (
	"context"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/gedphotos/gedphotos/pkg/domain/interfaces"
	"github.com/gedphotos/gedphotos/pkg/domain/model"
	"github.com/gedphotos/gedphotos/pkg/gedcom"
	"github.com/gedphotos/gedphotos/pkg/utils/fsutil"
)

type fetchUseCase struct {
	cdnClient interfaces.CDNClient
}

// NewFetch creates a new instance of FetchUseCase
func NewFetch(cdnClient interfaces.CDNClient) interfaces.FetchUseCase {
	return &fetchUseCase{
		cdnClient: cdnClient,
	}
}

// Fetch scans the GEDCOM file and downloads each photo reference, one
// blocking GET at a time in file order. The CDN links expire shortly after
// the export is generated, so downloads start right after the scan. A failed
// item is recorded in the report and the batch continues; only an unreadable
// input file aborts the run.
func (uc *fetchUseCase) Fetch(ctx context.Context, gedPath, outDir string) (*model.Report, error) {
	logger := ctxlog.From(ctx)

	refs, err := gedcom.ScanFile(gedPath)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		RunID: uuid.NewString(),
		Refs:  len(refs),
	}

	logger.Info("Scanned GEDCOM file",
		"run_id", report.RunID,
		"path", gedPath,
		"refs", len(refs),
	)

	if len(refs) == 0 {
		return report, nil
	}

	// The output directory is created only once a reference exists, so a
	// fruitless run leaves the filesystem untouched.
	if err := fsutil.EnsureDir(outDir); err != nil {
		return nil, err
	}

	for _, ref := range refs {
		file, err := uc.download(ctx, ref, outDir)
		if err != nil {
			logger.Warn("Failed to download photo",
				"person_id", ref.PersonID,
				"url", ref.URL,
				"error", err,
			)
			report.Failures = append(report.Failures, model.Failure{
				PersonID: ref.PersonID,
				URL:      ref.URL,
				Error:    err.Error(),
			})
			continue
		}

		report.Downloaded++
		report.Files = append(report.Files, file)
		logger.Info("Downloaded photo",
			"person_id", ref.PersonID,
			"url", ref.URL,
			"file", file,
		)
	}

	logger.Info("Fetch completed",
		"run_id", report.RunID,
		"refs", report.Refs,
		"downloaded", report.Downloaded,
		"failed", len(report.Failures),
	)

	return report, nil
}

func (uc *fetchUseCase) download(ctx context.Context, ref *model.PhotoRef, outDir string) (string, error) {
	data, contentType, err := uc.cdnClient.Fetch(ctx, ref.URL)
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch photo", goerr.V("url", ref.URL))
	}

	name := ref.FileName(imageExt(ref.URL, contentType))
	return fsutil.WriteFileAtomic(outDir, name, data)
}

var contentTypeExts = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var urlExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// imageExt picks the output extension: the URL path when it carries a known
// image extension, then the response Content-Type, then ".jpg" since these
// CDN exports serve JPEG unless told otherwise.
func imageExt(rawURL, contentType string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if ext := strings.ToLower(path.Ext(u.Path)); urlExts[ext] {
			return ext
		}
	}

	mt := contentType
	if i := strings.Index(mt, ";"); i >= 0 {
		mt = mt[:i]
	}
	if ext, ok := contentTypeExts[strings.TrimSpace(strings.ToLower(mt))]; ok {
		return ext
	}

	return ".jpg"
}
