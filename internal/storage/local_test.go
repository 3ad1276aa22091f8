package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(LocalConfig{
		BasePath: t.TempDir(),
		BaseURL:  "http://localhost:8080/files/",
	}, nil)
	require.NoError(t, err)
	return s
}

func putString(t *testing.T, s *LocalStorage, key, content string, opts PutOptions) {
	t.Helper()
	require.NoError(t, s.Put(context.Background(), key, strings.NewReader(content), opts))
}

func TestLocalPutGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	putString(t, s, "u1/d1/charter_abc.pdf", "%PDF-1.7 data", PutOptions{})

	body, info, err := s.Get(ctx, "u1/d1/charter_abc.pdf")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 data", string(data))
	assert.Equal(t, "u1/d1/charter_abc.pdf", info.Key)
	assert.Equal(t, int64(13), info.Size)
	assert.Equal(t, ContentTypePDF, info.ContentType)
	assert.False(t, info.LastModified.IsZero())
}

func TestLocalGetMissing(t *testing.T) {
	s := newTestStorage(t)

	_, _, err := s.Get(context.Background(), "nope/missing.pdf")
	assert.True(t, IsNotFound(err))

	var serr *StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Get", serr.Op)
	assert.Equal(t, "nope/missing.pdf", serr.Key)
}

func TestLocalPutOverwrite(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	putString(t, s, "a.txt", "first", PutOptions{})

	err := s.Put(ctx, "a.txt", strings.NewReader("second"), PutOptions{})
	assert.True(t, errors.Is(err, ErrKeyExists))

	require.NoError(t, s.Put(ctx, "a.txt", strings.NewReader("second"), PutOptions{Overwrite: true}))

	body, _, err := s.Get(ctx, "a.txt")
	require.NoError(t, err)
	defer body.Close()
	data, _ := io.ReadAll(body)
	assert.Equal(t, "second", string(data))
}

func TestLocalPutMaxSize(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	err := s.Put(ctx, "big.bin", strings.NewReader("0123456789"), PutOptions{MaxSize: 5})
	assert.True(t, errors.Is(err, ErrTooLarge))

	// the partial write is cleaned up
	exists, err := s.Exists(ctx, "big.bin")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	putString(t, s, "a.txt", "data", PutOptions{})
	require.NoError(t, s.Delete(ctx, "a.txt"))
	require.NoError(t, s.Delete(ctx, "a.txt"))

	exists, err := s.Exists(ctx, "a.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalList(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	putString(t, s, "u1/d1/charter_aaa.pdf", "a", PutOptions{})
	putString(t, s, "u1/d1/charter_bbb.pdf", "b", PutOptions{})
	putString(t, s, "u1/d1/backlog_ccc.pdf", "c", PutOptions{})
	putString(t, s, "u1/d2/charter_ddd.pdf", "d", PutOptions{})

	t.Run("directory prefix", func(t *testing.T) {
		got, err := s.List(ctx, "u1/d1/")
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("partial filename prefix", func(t *testing.T) {
		got, err := s.List(ctx, "u1/d1/charter_")
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, obj := range got {
			assert.True(t, strings.HasPrefix(obj.Key, "u1/d1/charter_"))
		}
	})

	t.Run("no matches", func(t *testing.T) {
		got, err := s.List(ctx, "u9/")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("traversal rejected", func(t *testing.T) {
		_, err := s.List(ctx, "../outside")
		assert.True(t, errors.Is(err, ErrInvalidKey))
	})
}

func TestLocalURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.URL(context.Background(), "u1/d1/charter_abc.pdf", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/u1/d1/charter_abc.pdf", url)
}

func TestLocalTraversalBlocked(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	for _, key := range []string{"", "../etc/passwd", "a/../../b"} {
		err := s.Put(ctx, key, strings.NewReader("x"), PutOptions{})
		assert.True(t, errors.Is(err, ErrInvalidKey), "key %q should be rejected", key)
	}
}

func TestDocumentKeyHelpers(t *testing.T) {
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	documentID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	prefix := DocumentPrefix(userID, documentID)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111/22222222-2222-2222-2222-222222222222/", prefix)

	key := DocumentKey(userID, documentID, "charter_abc.pdf")
	assert.Equal(t, prefix+"charter_abc.pdf", key)
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name     string
		provided string
		filename string
		data     string
		want     string
	}{
		{name: "explicit wins", provided: "application/json", filename: "x.pdf", want: "application/json"},
		{name: "pdf extension", filename: "doc.pdf", want: ContentTypePDF},
		{name: "html extension", filename: "page.html", want: ContentTypeHTML},
		{name: "sniffed pdf", filename: "noext", data: "%PDF-1.7 ...", want: ContentTypePDF},
		{name: "unknown", filename: "noext", data: "plain words", want: "text/plain; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data io.Reader
			if tt.data != "" {
				data = strings.NewReader(tt.data)
			}
			assert.Equal(t, tt.want, DetectContentType(tt.provided, tt.filename, data))
		})
	}
}

func TestIsPDF(t *testing.T) {
	assert.True(t, IsPDF("application/pdf"))
	assert.True(t, IsPDF("application/pdf; charset=binary"))
	assert.False(t, IsPDF("text/html"))
}
