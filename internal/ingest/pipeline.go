package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"mvault/internal/config"
	"mvault/internal/content"
	"mvault/internal/credits"
	"mvault/internal/logging"
	"mvault/internal/metadata"
	"mvault/internal/naming"
	"mvault/internal/tags"
)

// Status classifies the outcome of one ingestion attempt.
type Status string

const (
	StatusCreated  Status = "created"
	StatusRepaired Status = "repaired"
	StatusSkipped  Status = "skipped"
)

// Result reports what one ingestion attempt did.
type Result struct {
	Status Status
	Reason string
	Slug   string
	Title  string
	Artist string
}

// Options tune one ingestion attempt.
type Options struct {
	// Force overwrites an existing record with the same slug.
	Force bool
	// RepairCovers limits the run to re-downloading missing or empty
	// covers of existing records; nothing else is written.
	RepairCovers bool
	// AdditionalTags are curated tags that take precedence over derived ones.
	AdditionalTags []string
	CuratorNote    string
	// TargetTitle is the requested title when the URL came from a source
	// table row. It enables the junk-title filter with exemptions for
	// keywords the requested title itself contains.
	TargetTitle string
}

// MetadataProvider is the external fetch boundary. Tests substitute a fake.
type MetadataProvider interface {
	Fetch(ctx context.Context, videoURL string) (*metadata.Video, error)
}

// CoverFetcher downloads one cover with fallback. Tests substitute a fake.
type CoverFetcher interface {
	Download(url, fallbackURL, localPath string) error
}

// Pipeline turns a video URL into a persisted content record plus cover
// asset. All mutation goes through the content-directory lock so a
// reconcile read pass never observes a half-applied change.
type Pipeline struct {
	cfg      *config.Config
	store    *content.Store
	provider MetadataProvider
	covers   CoverFetcher
	logger   *slog.Logger
	lock     *flock.Flock
}

func NewPipeline(cfg *config.Config, store *content.Store, provider MetadataProvider, covers CoverFetcher, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	if covers == nil {
		covers = NewCoverDownloader(cfg.Ingest.ZombieThresholdKB)
	}
	return &Pipeline{
		cfg:      cfg,
		store:    store,
		provider: provider,
		covers:   covers,
		logger:   logger,
		lock:     flock.New(filepath.Join(cfg.Paths.ContentDir, ".mvault.lock")),
	}
}

// AcquireLock takes the content-directory lock without blocking.
func (p *Pipeline) AcquireLock() error {
	if err := os.MkdirAll(p.cfg.Paths.ContentDir, 0o755); err != nil {
		return fmt.Errorf("creating content directory: %w", err)
	}
	ok, err := p.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire content lock: %w", err)
	}
	if !ok {
		return errors.New("another mvault instance is mutating the content set")
	}
	return nil
}

// ReleaseLock releases the content-directory lock.
func (p *Pipeline) ReleaseLock() {
	_ = p.lock.Unlock()
}

// IngestURL fetches one video's metadata and persists it as a record.
func (p *Pipeline) IngestURL(ctx context.Context, videoURL string, opts Options) (Result, error) {
	videoID, platform, ok := metadata.ExtractVideoID(videoURL)
	if !ok {
		return Result{}, fmt.Errorf("unrecognized video URL %q", videoURL)
	}

	video, err := p.provider.Fetch(ctx, videoURL)
	if err != nil {
		return Result{}, fmt.Errorf("fetching metadata: %w", err)
	}

	if isPureAudio(video.Title) {
		return Result{Status: StatusSkipped, Reason: "pure audio asset", Title: video.Title}, nil
	}
	if opts.TargetTitle != "" && IsJunkTitle(video.Title, opts.TargetTitle) {
		return Result{Status: StatusSkipped, Reason: "junk title", Title: video.Title}, nil
	}

	artist := ResolveArtist(video.Uploader, video.Title)
	if artist == "" {
		artist = "Unknown"
	}
	title := naming.CleanTitle(video.Title, artist)
	if title == "" {
		title = "Untitled"
	}

	publishDate := video.PublishDate(time.Now())
	year := publishDate[:4]
	slug := naming.RecordSlug(year, artist, title)

	coverName := naming.Slugify(artist) + "-" + naming.Slugify(title) + ".jpg"
	coverLocal := filepath.Join(p.cfg.Paths.CoversDir, year, coverName)
	coverRef := "/covers/" + year + "/" + coverName

	log := p.logger.With(logging.String(logging.FieldSlug, slug))

	if opts.RepairCovers {
		return p.repairCover(video, platform, videoID, slug, coverLocal, coverRef, log)
	}

	if p.store.Exists(slug) && !opts.Force && !p.cfg.Ingest.OverwriteExisting {
		return Result{Status: StatusSkipped, Reason: "record already exists", Slug: slug, Title: title, Artist: artist}, nil
	}

	creds := credits.Extract(video.Description)

	coverValue := coverRef
	if err := p.downloadCover(video, platform, videoID, coverLocal); err != nil {
		// Keep the record with a remote cover reference rather than
		// failing the whole ingest over a thumbnail.
		if source, selErr := metadata.SelectCover(video, platform, videoID); selErr == nil {
			coverValue = source.URL
		}
		log.Warn("cover download failed, keeping remote URL", logging.Error(err))
	}

	rec := content.Record{
		Slug:        slug,
		Title:       title,
		Artist:      artist,
		VideoURL:    videoURL,
		PublishDate: publishDate,
		Cover:       coverValue,
		CuratorNote: opts.CuratorNote,
		Credits:     creds,
		Tags:        tags.ForRecord(opts.AdditionalTags, creds, year),
	}
	if err := p.store.Write(rec); err != nil {
		return Result{}, err
	}

	log.Info("ingested video",
		logging.String("artist", artist),
		logging.String("title", title),
		logging.String("director", creds.Director))
	return Result{Status: StatusCreated, Slug: slug, Title: title, Artist: artist}, nil
}

func (p *Pipeline) downloadCover(video *metadata.Video, platform metadata.Platform, videoID, coverLocal string) error {
	source, err := metadata.SelectCover(video, platform, videoID)
	if err != nil {
		return err
	}
	return p.covers.Download(source.URL, source.Fallback, coverLocal)
}

func (p *Pipeline) repairCover(video *metadata.Video, platform metadata.Platform, videoID, slug, coverLocal, coverRef string, log *slog.Logger) (Result, error) {
	if !p.store.Exists(slug) {
		return Result{Status: StatusSkipped, Reason: "no record for this video", Slug: slug}, nil
	}
	if info, err := os.Stat(coverLocal); err == nil && info.Size() > 0 {
		return Result{Status: StatusSkipped, Reason: "cover already valid", Slug: slug}, nil
	}
	if err := p.downloadCover(video, platform, videoID, coverLocal); err != nil {
		return Result{}, fmt.Errorf("repairing cover for %s: %w", slug, err)
	}

	rec, err := p.store.Get(slug)
	if err != nil {
		return Result{}, err
	}
	if !strings.EqualFold(rec.Cover, coverRef) {
		rec.Cover = coverRef
		if err := p.store.Write(rec); err != nil {
			return Result{}, err
		}
	}
	log.Info("repaired cover")
	return Result{Status: StatusRepaired, Slug: slug}, nil
}
