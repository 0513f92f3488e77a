package dataset

import (
	"context"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/uyouii/engagement-charts/common"
	"github.com/uyouii/engagement-charts/model"
	"github.com/uyouii/engagement-charts/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Source supplies the raw bytes of one table.
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// NewSource picks an HTTPSource for http(s) URLs and a FileSource otherwise.
func NewSource(location string) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return &HTTPSource{URL: location}
	}
	return &FileSource{Path: location}
}

type FileSource struct {
	Path string
}

func (s *FileSource) Name() string {
	return s.Path
}

func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, loadError(s, err)
	}
	return f, nil
}

type HTTPSource struct {
	URL string
	// Client defaults to http.DefaultClient.
	Client *http.Client
}

func (s *HTTPSource) Name() string {
	return s.URL
}

func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, loadError(s, err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, loadError(s, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, loadError(s, errors.Errorf("unexpected status %s", resp.Status))
	}
	return resp.Body, nil
}

// loadError matches both common.ErrorSourceLoad and the cause.
func loadError(s Source, err error) error {
	return errors.Wrap(multierr.Combine(common.ErrorSourceLoad, err), s.Name())
}

// Load opens src and reads it as csv. Any failure aborts the whole load,
// partial tables are never returned.
func Load(ctx context.Context, src Source, opts Options) ([]model.Record, error) {
	logger := utils.GetLogger(ctx)

	rc, err := src.Open(ctx)
	if err != nil {
		logger.Error("open source failed", zap.String("source", src.Name()), zap.Error(err))
		return nil, err
	}
	defer rc.Close()

	records, err := ReadCSV(ctx, rc, opts)
	if err != nil {
		logger.Error("read csv failed", zap.String("source", src.Name()), zap.Error(err))
		return nil, err
	}

	logger.Info("load source success", zap.String("source", src.Name()), zap.Int("records", len(records)))
	return records, nil
}
