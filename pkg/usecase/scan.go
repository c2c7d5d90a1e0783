package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"

	"github.com/gedphotos/gedphotos/pkg/domain/interfaces"
	"github.com/gedphotos/gedphotos/pkg/domain/model"
	"github.com/gedphotos/gedphotos/pkg/gedcom"
)

type scanUseCase struct{}

// NewScan creates a new instance of ScanUseCase
func NewScan() interfaces.ScanUseCase {
	return &scanUseCase{}
}

// Scan lists the photo references a fetch would download, without touching
// the network
func (uc *scanUseCase) Scan(ctx context.Context, gedPath string) ([]*model.PhotoRef, error) {
	refs, err := gedcom.ScanFile(gedPath)
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Info("Scanned GEDCOM file",
		"path", gedPath,
		"refs", len(refs),
	)
	return refs, nil
}
