package manual

import (
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Run("without cache", func(t *testing.T) {
		c, err := NewHTTPClient("", 10*time.Second)
		require.NoError(t, err)
		assert.Equal(t, http.DefaultTransport, c.Transport)
		assert.Equal(t, 10*time.Second, c.Timeout)
	})
	t.Run("with cache", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "cache")
		c, err := NewHTTPClient(dir, 0)
		require.NoError(t, err)
		assert.IsType(t, &httpcache.Transport{}, c.Transport)
		assert.DirExists(t, dir)
	})
}
