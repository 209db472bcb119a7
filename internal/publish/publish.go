// Package publish uploads a built site to an S3 bucket.
package publish

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/denotw/website/internal/build"
	"github.com/denotw/website/internal/utils"
	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFile lists paths, in gitignore syntax, which are not uploaded
const IgnoreFile = ".publishignore"

var builtinIgnores = []string{"/" + build.LockFile, "/" + IgnoreFile}

type Publisher struct {
	client S3Client
	bucket string
	prefix string
}

func NewPublisher(client S3Client, bucket, prefix string) *Publisher {
	return &Publisher{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// Publish uploads every file under dir which is not ignored, and returns the object keys written. The upload
// stops at the first failing object.
func (p *Publisher) Publish(ctx context.Context, dir string) ([]string, error) {
	log := utils.GetLogger(ctx, "publish.Publisher")

	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	gi, err := readIgnoreFile(dir)
	if err != nil {
		return nil, err
	}

	var keys []string
	err = filepath.WalkDir(dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, name)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if gi.MatchesPath(rel + "/") {
				log.Debug("skipping ignored directory", "path", rel)
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || gi.MatchesPath(rel) {
			log.Debug("skipping file", "path", rel)
			return nil
		}

		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		key := p.objectKey(rel)
		if err := p.put(ctx, key, rel, data); err != nil {
			return err
		}
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		return keys, err
	}
	log.Info("site published", "bucket", p.bucket, "objects", len(keys))
	return keys, nil
}

func (p *Publisher) objectKey(rel string) string {
	if p.prefix == "" {
		return rel
	}
	return path.Join(p.prefix, rel)
}

func (p *Publisher) put(ctx context.Context, key, rel string, data []byte) error {
	mediaType := utils.DetectMediaType(rel, utils.ReadCloserGetterFromBytes(data))
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mediaType),
	})
	if err != nil {
		utils.GetLogger(ctx, "publish.Publisher").Warn("failed to write object to S3", "object", key, "bucket", p.bucket, "error", err.Error())
		return classifyS3Error(err, key)
	}
	utils.GetLogger(ctx, "publish.Publisher").Debug("object written to S3", "object", key, "contentType", mediaType)
	return nil
}

func readIgnoreFile(dir string) (*ignore.GitIgnore, error) {
	lines := append([]string{}, builtinIgnores...)
	f, err := os.Open(filepath.Join(dir, IgnoreFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ignore.CompileIgnoreLines(lines...), nil
		}
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", IgnoreFile, err)
	}
	return ignore.CompileIgnoreLines(lines...), nil
}
