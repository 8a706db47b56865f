// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Store implements Store over an AWS SDK v2 S3 client.
type S3Store struct {
	client *s3.Client
}

// NewS3Store wraps an S3 client. Credentials and region are whatever the
// client was built with; see internal/aws.
func NewS3Store(client *s3.Client) *S3Store {
	return &S3Store{client: client}
}

func (s *S3Store) Download(ctx context.Context, bucket, key string, w io.Writer) error {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return &RemoteAccessError{
			Bucket:   bucket,
			Key:      key,
			NotFound: isNotFound(err),
			Err:      err,
		}
	}
	defer out.Body.Close()

	if _, err := io.Copy(w, out.Body); err != nil {
		return &RemoteAccessError{Bucket: bucket, Key: key, Err: err}
	}

	log.Debugf("downloaded s3://%s/%s", bucket, key)
	return nil
}

func (s *S3Store) ListCommonPrefixes(ctx context.Context, bucket, prefix string) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket:    awsv2.String(bucket),
		Prefix:    awsv2.String(prefix),
		Delimiter: awsv2.String("/"),
	})

	seen := map[string]struct{}{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &RemoteAccessError{Bucket: bucket, Key: prefix, Err: err}
		}
		for _, cp := range page.CommonPrefixes {
			if cp.Prefix == nil {
				continue
			}
			if name := prefixBase(*cp.Prefix); name != "" {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

// prefixBase extracts the folder name from a common prefix such as
// "gis_data/KEN/" -> "KEN".
func prefixBase(p string) string {
	trimmed := strings.TrimSuffix(p, "/")
	if trimmed == "" {
		return ""
	}
	return path.Base(trimmed)
}

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var ae smithy.APIError
	if errors.As(err, &ae) {
		code := ae.ErrorCode()
		return code == "NoSuchKey" || code == "NotFound"
	}
	return false
}
