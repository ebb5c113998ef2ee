// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator runs the theme generation pipeline: validate the
// request, reserve a unique slug, optionally fetch AI content, normalize,
// render and write the theme directory.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"geniewp/internal/apperr"
	"geniewp/internal/models"
	"geniewp/internal/render"
	"geniewp/internal/slug"
	"geniewp/internal/themedata"
)

// ContentFetcher produces the optional AI payload for a request.
type ContentFetcher interface {
	Fetch(ctx context.Context, apiKey string, req models.ThemeRequest) (*themedata.Payload, error)
}

// SettingsReader reads persisted options such as the API key.
type SettingsReader interface {
	Get(ctx context.Context, key string) (string, error)
}

// ThemeRecorder persists the data a theme was rendered from.
type ThemeRecorder interface {
	Save(ctx context.Context, rec *models.ThemeRecord) error
}

// ArchiveUploader stores a zipped theme and returns a download URL.
type ArchiveUploader interface {
	UploadTheme(ctx context.Context, slug string, archive []byte) (string, error)
}

// Options configures an Assembler. Fs, Root and Settings are required;
// the rest are optional.
type Options struct {
	Fs       afero.Fs
	Root     string
	Fetcher  ContentFetcher
	Settings SettingsReader
	Themes   ThemeRecorder
	Archives ArchiveUploader
	Now      func() time.Time
}

// Assembler writes generated themes under Root.
type Assembler struct {
	fs       afero.Fs
	root     string
	fetcher  ContentFetcher
	settings SettingsReader
	themes   ThemeRecorder
	archives ArchiveUploader
	now      func() time.Time

	mu       sync.Mutex
	reserved map[string]struct{}
}

// NewAssembler creates an Assembler from opts.
func NewAssembler(opts Options) *Assembler {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Assembler{
		fs:       opts.Fs,
		root:     opts.Root,
		fetcher:  opts.Fetcher,
		settings: opts.Settings,
		themes:   opts.Themes,
		archives: opts.Archives,
		now:      now,
		reserved: make(map[string]struct{}),
	}
}

// Root returns the theme root directory.
func (a *Assembler) Root() string { return a.root }

// Generate creates a new theme from req. Only InvalidInput,
// ThemeAlreadyExists and StorageError are returned; AI failures are
// logged and the theme is built from defaults.
func (a *Assembler) Generate(ctx context.Context, req models.ThemeRequest) (*models.GeneratedTheme, error) {
	req = themedata.Sanitize(req)
	if err := themedata.Validate(req); err != nil {
		return nil, err
	}

	themeSlug, err := a.reserve(req.SiteName)
	if err != nil {
		return nil, err
	}
	defer a.release(themeSlug)

	payload := a.fetch(ctx, req)
	td := themedata.Normalize(req, payload)
	td.Slug = themeSlug
	aiEnhanced := len(payload.ValidFields()) > 0

	now := a.now()
	dir := path.Join(a.root, themeSlug)
	files, err := a.write(dir, td, now.Year())
	if err != nil {
		return nil, err
	}

	theme := &models.GeneratedTheme{
		ID:         uuid.New(),
		Slug:       themeSlug,
		Name:       td.SiteName,
		Dir:        dir,
		Files:      files,
		AIEnhanced: aiEnhanced,
		CreatedAt:  now,
	}

	if a.archives != nil {
		theme.DownloadURL = a.upload(ctx, themeSlug, dir)
	}

	if a.themes != nil {
		rec := &models.ThemeRecord{
			Slug:        themeSlug,
			Name:        td.SiteName,
			Data:        td,
			AIEnhanced:  aiEnhanced,
			DownloadURL: theme.DownloadURL,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := a.themes.Save(ctx, rec); err != nil {
			slog.Warn("theme data not persisted", "slug", themeSlug, "error", err)
		}
	}

	slog.Info("theme generated",
		"slug", themeSlug,
		"files", len(files),
		"ai_enhanced", aiEnhanced,
	)
	return theme, nil
}

// reserve picks the first free slug for siteName and holds it until
// release is called.
func (a *Assembler) reserve(siteName string) (string, error) {
	installed, err := a.installed()
	if err != nil {
		return "", err
	}

	base := slug.Theme(siteName)

	a.mu.Lock()
	defer a.mu.Unlock()

	candidate := base
	for i := 1; ; i++ {
		_, taken := installed[candidate]
		_, held := a.reserved[candidate]
		if !taken && !held {
			break
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
	a.reserved[candidate] = struct{}{}
	return candidate, nil
}

func (a *Assembler) release(themeSlug string) {
	a.mu.Lock()
	delete(a.reserved, themeSlug)
	a.mu.Unlock()
}

// installed returns the names present under the theme root. A missing
// root counts as empty.
func (a *Assembler) installed() (map[string]struct{}, error) {
	entries, err := afero.ReadDir(a.fs, a.root)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]struct{}{}, nil
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.StorageError, "Could not read the themes directory", err)
	}

	names := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		names[e.Name()] = struct{}{}
	}
	return names, nil
}

func (a *Assembler) fetch(ctx context.Context, req models.ThemeRequest) *themedata.Payload {
	if a.fetcher == nil || a.settings == nil {
		return nil
	}

	apiKey, err := a.settings.Get(ctx, models.OptionAPIKey)
	if err != nil {
		slog.Warn("could not read API key, generating without AI", "error", err)
		return nil
	}
	if apiKey == "" {
		slog.Info("no API key configured, generating default theme")
		return nil
	}

	payload, err := a.fetcher.Fetch(ctx, apiKey, req)
	if err != nil {
		slog.Warn("AI content unavailable, using defaults",
			"kind", apperr.KindOf(err),
			"error", err,
		)
		return nil
	}

	slog.Debug("AI content received", "fields", payload.ValidFields())
	return payload
}

// write creates dir exclusively and renders every artifact into it. On a
// write failure the partial directory is removed.
func (a *Assembler) write(dir string, td models.ThemeData, year int) ([]string, error) {
	if err := a.fs.MkdirAll(a.root, 0o755); err != nil {
		return nil, apperr.Wrap(apperr.StorageError, "Could not create the themes directory", err)
	}
	if err := a.fs.Mkdir(dir, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, apperr.New(apperr.ThemeAlreadyExists, "A theme with this name already exists.")
		}
		return nil, apperr.Wrap(apperr.StorageError, "Could not create the theme directory", err)
	}

	files, err := a.writeArtifacts(dir, td, year)
	if err != nil {
		if rmErr := a.fs.RemoveAll(dir); rmErr != nil {
			slog.Error("failed to remove partial theme", "dir", dir, "error", rmErr)
		}
		return nil, err
	}
	return files, nil
}

func (a *Assembler) writeArtifacts(dir string, td models.ThemeData, year int) ([]string, error) {
	for _, sub := range render.Directories {
		if err := a.fs.MkdirAll(path.Join(dir, sub), 0o755); err != nil {
			return nil, apperr.Wrap(apperr.StorageError, fmt.Sprintf("Could not create %s", sub), err)
		}
	}

	artifacts := render.Artifacts(td, year)
	files := make([]string, 0, len(artifacts))
	for _, art := range artifacts {
		if err := afero.WriteFile(a.fs, path.Join(dir, art.Path), []byte(art.Content), 0o644); err != nil {
			return nil, apperr.Wrap(apperr.StorageError, fmt.Sprintf("Could not write %s", art.Path), err)
		}
		files = append(files, art.Path)
	}

	shot, err := render.Screenshot(td)
	if err != nil {
		return nil, apperr.Wrap(apperr.StorageError, "Could not render the theme screenshot", err)
	}
	if err := afero.WriteFile(a.fs, path.Join(dir, render.PathScreenshot), shot, 0o644); err != nil {
		return nil, apperr.Wrap(apperr.StorageError, "Could not write "+render.PathScreenshot, err)
	}
	return append(files, render.PathScreenshot), nil
}

func (a *Assembler) upload(ctx context.Context, themeSlug, dir string) string {
	archive, err := Zip(a.fs, dir, themeSlug)
	if err != nil {
		slog.Warn("theme archive not built", "slug", themeSlug, "error", err)
		return ""
	}
	url, err := a.archives.UploadTheme(ctx, themeSlug, archive)
	if err != nil {
		slog.Warn("theme archive upload failed", "slug", themeSlug, "error", err)
		return ""
	}
	return url
}
