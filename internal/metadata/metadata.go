// Package metadata fetches video metadata from an external provider binary.
// The provider we drive is yt-dlp; everything the pipeline needs comes out
// of its JSON dump, which keeps the platform differences (YouTube, Vimeo)
// inside the tool instead of this codebase.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// Thumbnail is one entry of the provider's thumbnail list.
type Thumbnail struct {
	URL        string `json:"url"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Preference *int   `json:"preference"`
}

// Video is the subset of provider metadata the pipeline consumes.
type Video struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Uploader    string      `json:"uploader"`
	UploadDate  string      `json:"upload_date"`
	ReleaseDate string      `json:"release_date"`
	Thumbnail   string      `json:"thumbnail"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
}

var dateDigits = regexp.MustCompile(`^\d{8}$`)

// PublishDate derives a YYYY-MM-DD date, preferring the upload date over
// the release date and falling back to now when the provider reports
// neither in usable form.
func (v *Video) PublishDate(now time.Time) string {
	for _, raw := range []string{v.UploadDate, v.ReleaseDate} {
		raw = strings.TrimSpace(raw)
		if dateDigits.MatchString(raw) {
			return raw[:4] + "-" + raw[4:6] + "-" + raw[6:8]
		}
	}
	return now.UTC().Format("2006-01-02")
}

// Executor runs the provider binary. Tests inject a fake.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) ([]byte, error)
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	return cmd.Output()
}

// Provider fetches metadata through a yt-dlp compatible binary.
type Provider struct {
	binary  string
	timeout time.Duration
	exec    Executor
}

// NewProvider constructs a Provider for the given binary. A zero timeout
// disables the per-fetch deadline.
func NewProvider(binary string, timeout time.Duration) *Provider {
	return newProvider(binary, timeout, commandExecutor{})
}

// NewProviderWithExecutor allows injecting a custom executor for testing.
func NewProviderWithExecutor(binary string, timeout time.Duration, exec Executor) *Provider {
	if exec == nil {
		exec = commandExecutor{}
	}
	return newProvider(binary, timeout, exec)
}

func newProvider(binary string, timeout time.Duration, exec Executor) *Provider {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "yt-dlp"
	}
	return &Provider{binary: binary, timeout: timeout, exec: exec}
}

// Fetch dumps and decodes the metadata for one video URL.
func (p *Provider) Fetch(ctx context.Context, videoURL string) (*Video, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	args := []string{"--no-check-certificate", "--dump-json", videoURL}
	output, err := p.exec.Run(ctx, p.binary, args)
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", p.binary, err)
	}

	var video Video
	if err := json.Unmarshal(output, &video); err != nil {
		return nil, fmt.Errorf("decoding provider output: %w", err)
	}
	return &video, nil
}
