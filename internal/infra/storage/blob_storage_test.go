package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStorage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobImageStorage(bucket, "https://cdn.example.com/images/")

	url, err := store.Upload(ctx, "products/p1.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/products/p1.png", url)

	attrs, err := bucket.Attributes(ctx, "products/p1.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)

	data, err := bucket.ReadAll(ctx, "products/p1.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, store.Delete(ctx, "products/p1.png"))
	exists, err := bucket.Exists(ctx, "products/p1.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobImageStorage_DeleteMissingIsNoop(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobImageStorage(bucket, "")

	assert.NoError(t, store.Delete(context.Background(), "missing.png"))
	assert.NoError(t, store.Delete(context.Background(), ""))
}
