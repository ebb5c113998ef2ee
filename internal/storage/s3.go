// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage uploads generated theme archives to S3-compatible object
// storage so the admin UI can offer a download link. It wraps the AWS SDK
// v2 and uses path-style access, which MinIO, CEPH and Hetzner require.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultLinkTTL is how long a presigned download link stays valid.
const DefaultLinkTTL = 24 * time.Hour

const archiveContentType = "application/zip"

// Config describes the bucket archives go to. With PublicURL set, links
// point at it directly; otherwise they are presigned.
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
	Prefix    string
	LinkTTL   time.Duration
}

// Client stores theme archives in one bucket.
type Client struct {
	s3        *s3.Client
	presigner *s3.PresignClient
	bucket    string
	endpoint  string
	publicURL string
	prefix    string
	linkTTL   time.Duration
}

// New creates a storage client. It returns (nil, nil) when the endpoint,
// credentials or bucket are missing so the app can run without archives.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, nil
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	if cfg.LinkTTL <= 0 {
		cfg.LinkTTL = DefaultLinkTTL
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "themes"
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")

	s3Client := s3.New(s3.Options{
		Region:       cfg.Region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	})

	return &Client{
		s3:        s3Client,
		presigner: s3.NewPresignClient(s3Client),
		bucket:    cfg.Bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		prefix:    strings.Trim(cfg.Prefix, "/"),
		linkTTL:   cfg.LinkTTL,
	}, nil
}

// ArchiveKey returns the object key for a theme's archive.
func (c *Client) ArchiveKey(themeSlug string) string {
	return path.Join(c.prefix, themeSlug+".zip")
}

// UploadTheme stores a zipped theme and returns its download URL.
func (c *Client) UploadTheme(ctx context.Context, themeSlug string, archive []byte) (string, error) {
	key := c.ArchiveKey(themeSlug)

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(c.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(archive),
		ContentLength:      aws.Int64(int64(len(archive))),
		ContentType:        aws.String(archiveContentType),
		ContentDisposition: aws.String(`attachment; filename="` + themeSlug + `.zip"`),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}

	if c.publicURL != "" {
		return c.FileURL(key), nil
	}
	return c.PresignedURL(ctx, key, c.linkTTL)
}

// FileURL returns the public URL for key.
// Uses the configured public URL if set, otherwise builds a path-style URL.
func (c *Client) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

// PresignedURL generates a pre-signed GET URL for key.
// The URL is valid for expires, which S3 caps at 7 days.
func (c *Client) PresignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("s3 presign %s/%s: %w", c.bucket, key, err)
	}
	return req.URL, nil
}
