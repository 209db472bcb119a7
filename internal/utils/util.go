package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var SiteVersion = "n/a"

// GetSiteVersion returns the version the binary was built with, without a leading 'v'.
// If the version is not a valid semantic version it is returned unchanged.
func GetSiteVersion() string {
	v, err := semver.NewVersion(SiteVersion)
	if err != nil {
		return SiteVersion
	}
	return strings.TrimPrefix(v.Original(), "v")
}

// ReadRequiredFile reads the file. Returns expanded absolute representation of the filename and file contents.
// Removes Byte-Order-Mark from the content
func ReadRequiredFile(name string) (string, []byte, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", nil, fmt.Errorf("error expanding file name %s: %w", name, err)
	}

	stat, err := os.Stat(abs)
	if err != nil {
		return "", nil, fmt.Errorf("error reading file %s: %w", abs, err)
	}
	if stat.IsDir() {
		return "", nil, fmt.Errorf("%s is not a file", abs)
	}
	raw, err := os.ReadFile(abs)
	if err != nil {
		return "", nil, fmt.Errorf("error reading file %s: %w", abs, err)
	}
	raw = removeBOM(raw)
	return abs, raw, nil
}

func removeBOM(bytes []byte) []byte {
	if len(bytes) > 2 && bytes[0] == 0xef && bytes[1] == 0xbb && bytes[2] == 0xbf {
		bytes = bytes[3:]
	}
	return bytes
}

// ExpandHome expands ~ in path with user's home directory, but only if path begins with ~ or /~
// Otherwise, returns path unchanged
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") && !strings.HasPrefix(path, "/~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand user home directory: %w", err)
	}
	_, rest, found := strings.Cut(path, "~")
	if !found {
		panic(errors.New("should have checked for ~ before"))
	}
	return filepath.Join(home, rest), nil
}

// NormalizeLineEndings replaces "\r\n" and lone '\r' with '\n'
func NormalizeLineEndings(bytes []byte) []byte {
	res := make([]byte, 0, len(bytes))
	var prevB byte
	for _, b := range bytes {
		switch b {
		case '\n':
			if prevB != '\r' {
				res = append(res, '\n')
			}
		case '\r':
			res = append(res, '\n')
		default:
			res = append(res, b)
		}
		prevB = b
	}
	return res
}

// ConvertToNativeLineEndings converts all instances of '\n' to native line endings for the platform.
// Assumes that line endings are normalized, i.e. there are no '\r' or "\r\n" line endings in the data
// See NormalizeLineEndings
func ConvertToNativeLineEndings(b []byte) []byte {
	return convertToNativeLineEndings(b)
}

// AtomicWriteFile writes data to the named file quasi-atomically, creating it if necessary.
// On unix-like systems, the function uses github.com/google/renameio.
// On Windows, it has a simpler implementation using os.Rename(), which is believed to be atomic on NTFS,
// but there is no hard guarantee from Microsoft on that.
func AtomicWriteFile(name string, data []byte, perm os.FileMode) error {
	return atomicWriteFile(name, data, perm)
}

func ParseAsList(list, separator string, trim bool) []string {
	ret := make([]string, 0)

	for _, entry := range strings.Split(list, separator) {
		if trim {
			entry = strings.TrimSpace(entry)
		}
		if entry != "" {
			ret = append(ret, entry)
		}
	}
	return ret
}

type ReadCloserGetter func() (io.ReadCloser, error)

func ReadCloserGetterFromBytes(raw []byte) ReadCloserGetter {
	return func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewBuffer(raw)), nil }
}

// DetectMediaType detects the media type of the file. The file name extension takes precedence for the text
// formats a website consists of (html, css, js, json, svg, markdown), because content sniffing cannot tell them
// apart. Otherwise, the type is detected by http.DetectContentType and, if that returns the generic
// 'application/octet-stream', guessed from the extension once more.
// If all of the above fails, it returns 'application/octet-stream'
func DetectMediaType(filename string, getReader ReadCloserGetter) string {
	const mediaOctetStream = "application/octet-stream"

	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := textMediaTypes[ext]; ok {
		return ct
	}

	reader, err := getReader()
	if err == nil {
		defer reader.Close()
		truncatedContent, err := io.ReadAll(io.LimitReader(reader, 512))
		if err == nil {
			ct := http.DetectContentType(truncatedContent)
			if ct != mediaOctetStream {
				return ct
			}
		}
	}

	ct := mime.TypeByExtension(ext)
	if ct != "" {
		return ct
	}
	return mediaOctetStream
}

var textMediaTypes = map[string]string{
	".html": "text/html; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".js":   "text/javascript; charset=utf-8",
	".json": "application/json",
	".svg":  "image/svg+xml",
	".md":   "text/markdown; charset=utf-8",
	".txt":  "text/plain; charset=utf-8",
}

type ctxKey string

const CtxKeyLogger ctxKey = "logger"

// WithLogger returns a copy of ctx carrying the logger
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, CtxKeyLogger, l)
}

// GetLogger returns the logger that is valid in the context
// If component is not empty, the logger is extended with the field "where" having that value.
func GetLogger(ctx context.Context, component string) *slog.Logger {
	var l *slog.Logger
	if ctx != nil {
		l, _ = ctx.Value(CtxKeyLogger).(*slog.Logger)
	}
	if l == nil {
		l = slog.Default()
	}
	if component != "" {
		l = l.With("where", component)
	}
	return l
}
