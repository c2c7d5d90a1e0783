package interfaces

import (
	"context"

	"github.com/gedphotos/gedphotos/pkg/domain/model"
)

// FetchUseCase defines the scan-then-download pipeline
type FetchUseCase interface {
	// Fetch scans the GEDCOM file at gedPath and downloads every photo
	// reference into outDir
	Fetch(ctx context.Context, gedPath, outDir string) (*model.Report, error)
}

// ScanUseCase defines the parse-only listing operation
type ScanUseCase interface {
	// Scan lists the photo references a fetch would download
	Scan(ctx context.Context, gedPath string) ([]*model.PhotoRef, error)
}
