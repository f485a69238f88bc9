// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package filestore keeps uploaded profile images and exposes them by public URL.
//
// Two backends are available, selected by config.Files.Driver:
//   - "local": files are written under a public directory and served by the
//     HTTP transport at /storage/*;
//   - "s3": objects are put into an S3-compatible bucket (AWS S3, MinIO).
//
// Objects are addressed by a slash-separated path relative to the storage
// root, e.g. "user_images/0192b3a4-7c1e-7d5f-9a2b-3c4d5e6f7a8b.png".
package filestore

import (
	"context"
	"net/http"

	"github.com/MKhiriev/visa-assistant/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/file_storage_mock.go -package=mock

// FileStorage stores and removes public files.
type FileStorage interface {
	// Store writes img under dir with a fresh unique name carrying
	// img.Extension and returns its public URL.
	Store(ctx context.Context, dir string, img models.ImageUpload) (string, error)

	// Exists reports whether an object is present at path.
	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes the object at path.
	Delete(ctx context.Context, path string) error

	// PathFromURL resolves a public URL previously returned by Store back to
	// the object path. ok is false for URLs outside this storage.
	PathFromURL(publicURL string) (path string, ok bool)
}

// PublicDisk is implemented by backends whose files are served by this
// process rather than by the storage itself.
type PublicDisk interface {
	Handler() http.Handler
}
