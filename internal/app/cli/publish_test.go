package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/denotw/website/internal/publish"
	"github.com/denotw/website/internal/testutils"
	"github.com/denotw/website/internal/testutils/s3mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPublish(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteTree(t, dir, map[string]string{
		"index.html":              "<!DOCTYPE html>",
		"manual/1.1.0/index.html": "<!DOCTYPE html>",
	})

	t.Run("with success", func(t *testing.T) {
		c := s3mocks.NewS3Client(t)
		c.On("PutObject", mock.Anything, mock.Anything).Return(&s3.PutObjectOutput{}, nil).Twice()

		var err error
		out := captureStdout(t, func() { err = Publish(context.Background(), publish.NewPublisher(c, "bucket", "www"), dir) })
		assert.NoError(t, err)
		assert.Equal(t, "www/index.html\nwww/manual/1.1.0/index.html\n", out)
	})

	t.Run("with failing upload", func(t *testing.T) {
		c := s3mocks.NewS3Client(t)
		c.On("PutObject", mock.Anything, mock.Anything).Return(&s3.PutObjectOutput{}, nil).Once()
		c.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

		var err error
		out := captureStdout(t, func() { err = Publish(context.Background(), publish.NewPublisher(c, "bucket", ""), dir) })
		assert.ErrorIs(t, err, publish.ErrS3Unknown)
		assert.Equal(t, "index.html\n", out)
	})
}
