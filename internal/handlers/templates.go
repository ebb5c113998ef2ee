// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"geniewp/internal/apperr"
	"geniewp/internal/models"
)

// Templates reads guided template definitions (one JSON document per
// file) from a directory.
type Templates struct {
	fs  afero.Fs
	dir string
}

// NewTemplates creates a Templates reader over dir in fsys.
func NewTemplates(fsys afero.Fs, dir string) *Templates {
	return &Templates{fs: fsys, dir: dir}
}

// List returns the *.json definitions sorted by file name (afero.ReadDir
// sorts). Empty files and
// files that are not valid JSON are skipped. A missing directory yields an
// empty list.
func (t *Templates) List() ([]models.GuidedTemplate, error) {
	entries, err := afero.ReadDir(t.fs, t.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.GuidedTemplate{}, nil
		}
		return nil, apperr.Wrap(apperr.StorageError, "Could not read templates", err)
	}

	list := make([]models.GuidedTemplate, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := afero.ReadFile(t.fs, path.Join(t.dir, e.Name()))
		if err != nil {
			slog.Warn("skipping unreadable template", "file", e.Name(), "error", err)
			continue
		}
		data = []byte(strings.TrimSpace(string(data)))
		if len(data) == 0 || !json.Valid(data) {
			slog.Warn("skipping invalid template", "file", e.Name())
			continue
		}
		list = append(list, models.GuidedTemplate{File: e.Name(), Definition: data})
	}
	return list, nil
}
