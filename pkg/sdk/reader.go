package catalookup

import (
	"context"
	"io"

	domcat "github.com/kailas-cloud/catalookup/internal/domain/catalog"
	catalogrepo "github.com/kailas-cloud/catalookup/internal/repository/catalog"
)

// readerSource decodes a catalog supplied by the caller.
type readerSource struct {
	r io.Reader
}

func (s *readerSource) Name() string { return "reader" }

func (s *readerSource) Load(_ context.Context) ([]domcat.Record, error) {
	return catalogrepo.Decode(s.r)
}
