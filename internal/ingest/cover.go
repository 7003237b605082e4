package ingest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const downloadUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// ErrZombieCover marks a downloaded thumbnail that is really a platform
// placeholder. Those come back tiny, so anything under the threshold is
// deleted instead of kept.
var ErrZombieCover = errors.New("cover is a placeholder image")

// CoverDownloader fetches cover images with placeholder detection.
type CoverDownloader struct {
	client        *http.Client
	zombieMinSize int64
}

// NewCoverDownloader builds a downloader that treats files smaller than
// zombieThresholdKB as placeholders.
func NewCoverDownloader(zombieThresholdKB int) *CoverDownloader {
	return &CoverDownloader{
		client:        &http.Client{Timeout: 60 * time.Second},
		zombieMinSize: int64(zombieThresholdKB) * 1024,
	}
}

func (d *CoverDownloader) fetchToFile(url, localPath string) (int64, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", downloadUserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetching cover: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetching cover: HTTP %d", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return 0, fmt.Errorf("creating cover directory: %w", err)
	}
	f, err := os.Create(localPath)
	if err != nil {
		return 0, fmt.Errorf("creating cover file: %w", err)
	}
	written, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(localPath)
		return 0, fmt.Errorf("writing cover file: %w", err)
	}
	if written == 0 {
		_ = os.Remove(localPath)
		return 0, fmt.Errorf("cover download was empty")
	}
	return written, nil
}

func (d *CoverDownloader) fetchChecked(url, localPath string) error {
	size, err := d.fetchToFile(url, localPath)
	if err != nil {
		return err
	}
	if size < d.zombieMinSize {
		_ = os.Remove(localPath)
		return fmt.Errorf("%w: %d bytes", ErrZombieCover, size)
	}
	return nil
}

// Download fetches the primary cover URL and falls back once when the
// primary fails or turns out to be a placeholder. The fallback is held to
// the same placeholder threshold.
func (d *CoverDownloader) Download(url, fallbackURL, localPath string) error {
	err := d.fetchChecked(url, localPath)
	if err == nil {
		return nil
	}
	if fallbackURL == "" || fallbackURL == url {
		return err
	}
	if fallbackErr := d.fetchChecked(fallbackURL, localPath); fallbackErr != nil {
		return fmt.Errorf("primary: %v; fallback: %w", err, fallbackErr)
	}
	return nil
}
