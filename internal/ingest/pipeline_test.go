package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mvault/internal/content"
	"mvault/internal/metadata"
	"mvault/internal/testsupport"
)

const testVideoURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

type fakeProvider struct {
	video *metadata.Video
	err   error
	calls int
}

func (f *fakeProvider) Fetch(ctx context.Context, videoURL string) (*metadata.Video, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.video, nil
}

type fakeCovers struct {
	err   error
	calls int
	urls  []string
	paths []string
}

func (f *fakeCovers) Download(url, fallbackURL, localPath string) error {
	f.calls++
	f.urls = append(f.urls, url)
	f.paths = append(f.paths, localPath)
	if f.err != nil {
		return f.err
	}
	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(localPath, []byte("jpeg"), 0o644)
}

func sampleVideo() *metadata.Video {
	return &metadata.Video{
		Title:      "KAYTRANADA - LITE SPOTS",
		Uploader:   "XL Recordings",
		UploadDate: "20160611",
	}
}

func newTestPipeline(t *testing.T, provider MetadataProvider, covers CoverFetcher) (*Pipeline, *content.Store) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := content.NewStore(cfg.Paths.ContentDir, nil)
	return NewPipeline(cfg, store, provider, covers, nil), store
}

func TestIngestURLCreatesRecord(t *testing.T) {
	covers := &fakeCovers{}
	pipeline, store := newTestPipeline(t, &fakeProvider{video: sampleVideo()}, covers)

	result, err := pipeline.IngestURL(context.Background(), testVideoURL, Options{})
	if err != nil {
		t.Fatalf("IngestURL returned error: %v", err)
	}
	if result.Status != StatusCreated {
		t.Fatalf("expected created, got %s (%s)", result.Status, result.Reason)
	}
	if result.Slug != "2016-kaytranada-lite-spots" {
		t.Fatalf("unexpected slug %q", result.Slug)
	}

	rec, err := store.Get(result.Slug)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Artist != "KAYTRANADA" || rec.Title != "LITE SPOTS" {
		t.Fatalf("unexpected record identity %q / %q", rec.Artist, rec.Title)
	}
	if rec.PublishDate != "2016-06-11" {
		t.Fatalf("unexpected publish date %q", rec.PublishDate)
	}
	if rec.Cover != "/covers/2016/kaytranada-lite-spots.jpg" {
		t.Fatalf("unexpected cover reference %q", rec.Cover)
	}
	if covers.calls != 1 {
		t.Fatalf("expected one cover download, got %d", covers.calls)
	}
	if !strings.Contains(covers.urls[0], "maxresdefault") {
		t.Fatalf("expected maxres cover URL, got %q", covers.urls[0])
	}
	if !strings.HasSuffix(covers.paths[0], filepath.Join("2016", "kaytranada-lite-spots.jpg")) {
		t.Fatalf("unexpected local cover path %q", covers.paths[0])
	}
}

func TestIngestURLSkipsExistingRecord(t *testing.T) {
	covers := &fakeCovers{}
	pipeline, store := newTestPipeline(t, &fakeProvider{video: sampleVideo()}, covers)

	first, err := pipeline.IngestURL(context.Background(), testVideoURL, Options{})
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	second, err := pipeline.IngestURL(context.Background(), testVideoURL, Options{})
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if second.Status != StatusSkipped || second.Reason != "record already exists" {
		t.Fatalf("expected existing-record skip, got %s (%s)", second.Status, second.Reason)
	}
	if covers.calls != 1 {
		t.Fatalf("skip should not re-download covers, got %d calls", covers.calls)
	}
	if !store.Exists(first.Slug) {
		t.Fatal("record disappeared")
	}
}

func TestIngestURLForceOverwrites(t *testing.T) {
	pipeline, _ := newTestPipeline(t, &fakeProvider{video: sampleVideo()}, &fakeCovers{})

	if _, err := pipeline.IngestURL(context.Background(), testVideoURL, Options{}); err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	result, err := pipeline.IngestURL(context.Background(), testVideoURL, Options{Force: true})
	if err != nil {
		t.Fatalf("forced ingest: %v", err)
	}
	if result.Status != StatusCreated {
		t.Fatalf("expected forced overwrite to create, got %s", result.Status)
	}
}

func TestIngestURLSkipsPureAudio(t *testing.T) {
	video := sampleVideo()
	video.Title = "KAYTRANADA - LITE SPOTS (Official Audio)"
	covers := &fakeCovers{}
	pipeline, _ := newTestPipeline(t, &fakeProvider{video: video}, covers)

	result, err := pipeline.IngestURL(context.Background(), testVideoURL, Options{})
	if err != nil {
		t.Fatalf("IngestURL: %v", err)
	}
	if result.Status != StatusSkipped || result.Reason != "pure audio asset" {
		t.Fatalf("expected pure-audio skip, got %s (%s)", result.Status, result.Reason)
	}
	if covers.calls != 0 {
		t.Fatal("audio skip should not touch covers")
	}
}

func TestIngestURLJunkFilterNeedsTargetTitle(t *testing.T) {
	video := sampleVideo()
	video.Title = "KAYTRANADA - LITE SPOTS (Behind the Scenes)"
	pipeline, _ := newTestPipeline(t, &fakeProvider{video: video}, &fakeCovers{})

	result, err := pipeline.IngestURL(context.Background(), testVideoURL, Options{TargetTitle: "LITE SPOTS"})
	if err != nil {
		t.Fatalf("IngestURL: %v", err)
	}
	if result.Status != StatusSkipped || result.Reason != "junk title" {
		t.Fatalf("expected junk skip, got %s (%s)", result.Status, result.Reason)
	}

	// Direct single-URL ingestion has no requested title, so the filter
	// stays off and the curator's judgment stands.
	result, err = pipeline.IngestURL(context.Background(), testVideoURL, Options{})
	if err != nil {
		t.Fatalf("IngestURL without target: %v", err)
	}
	if result.Status != StatusCreated {
		t.Fatalf("expected creation without target title, got %s (%s)", result.Status, result.Reason)
	}
}

func TestIngestURLKeepsRemoteCoverOnFailure(t *testing.T) {
	covers := &fakeCovers{err: errors.New("thumbnail host unreachable")}
	pipeline, store := newTestPipeline(t, &fakeProvider{video: sampleVideo()}, covers)

	result, err := pipeline.IngestURL(context.Background(), testVideoURL, Options{})
	if err != nil {
		t.Fatalf("IngestURL: %v", err)
	}
	if result.Status != StatusCreated {
		t.Fatalf("cover failure should not abort ingest, got %s", result.Status)
	}
	rec, err := store.Get(result.Slug)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !strings.HasPrefix(rec.Cover, "https://img.youtube.com/") {
		t.Fatalf("expected remote cover URL preserved, got %q", rec.Cover)
	}
}

func TestIngestURLRejectsUnrecognizedURL(t *testing.T) {
	pipeline, _ := newTestPipeline(t, &fakeProvider{video: sampleVideo()}, &fakeCovers{})
	if _, err := pipeline.IngestURL(context.Background(), "https://example.com/clip", Options{}); err == nil {
		t.Fatal("expected error for unrecognized URL")
	}
}

func TestRepairCoversSkipsUnknownRecord(t *testing.T) {
	pipeline, _ := newTestPipeline(t, &fakeProvider{video: sampleVideo()}, &fakeCovers{})

	result, err := pipeline.IngestURL(context.Background(), testVideoURL, Options{RepairCovers: true})
	if err != nil {
		t.Fatalf("IngestURL: %v", err)
	}
	if result.Status != StatusSkipped || result.Reason != "no record for this video" {
		t.Fatalf("expected skip for unknown record, got %s (%s)", result.Status, result.Reason)
	}
}

func TestRepairCoversRestoresMissingCover(t *testing.T) {
	covers := &fakeCovers{}
	pipeline, store := newTestPipeline(t, &fakeProvider{video: sampleVideo()}, covers)

	first, err := pipeline.IngestURL(context.Background(), testVideoURL, Options{})
	if err != nil {
		t.Fatalf("IngestURL: %v", err)
	}
	if err := os.Remove(covers.paths[0]); err != nil {
		t.Fatalf("remove cover: %v", err)
	}

	result, err := pipeline.IngestURL(context.Background(), testVideoURL, Options{RepairCovers: true})
	if err != nil {
		t.Fatalf("repair: %v", err)
	}
	if result.Status != StatusRepaired {
		t.Fatalf("expected repaired, got %s (%s)", result.Status, result.Reason)
	}
	if covers.calls != 2 {
		t.Fatalf("expected a second download, got %d calls", covers.calls)
	}

	rec, err := store.Get(first.Slug)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.Cover != "/covers/2016/kaytranada-lite-spots.jpg" {
		t.Fatalf("unexpected cover reference %q", rec.Cover)
	}

	again, err := pipeline.IngestURL(context.Background(), testVideoURL, Options{RepairCovers: true})
	if err != nil {
		t.Fatalf("second repair: %v", err)
	}
	if again.Status != StatusSkipped || again.Reason != "cover already valid" {
		t.Fatalf("expected valid-cover skip, got %s (%s)", again.Status, again.Reason)
	}
}

func TestAcquireLockRejectsSecondHolder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := content.NewStore(cfg.Paths.ContentDir, nil)
	first := NewPipeline(cfg, store, &fakeProvider{video: sampleVideo()}, &fakeCovers{}, nil)
	second := NewPipeline(cfg, store, &fakeProvider{video: sampleVideo()}, &fakeCovers{}, nil)

	if err := first.AcquireLock(); err != nil {
		t.Fatalf("first lock: %v", err)
	}
	defer first.ReleaseLock()

	if err := second.AcquireLock(); err == nil {
		second.ReleaseLock()
		t.Fatal("expected second lock acquisition to fail")
	}
}
