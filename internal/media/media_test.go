package media

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohits-web03/myspace/internal/config"
	"github.com/rohits-web03/myspace/internal/logging"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestDetectImage(t *testing.T) {
	img, err := DetectImage(pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, ".png", img.Extension)

	gif, err := DetectImage([]byte("GIF89a\x01\x00\x01\x00\x00\x00\x00"))
	require.NoError(t, err)
	assert.Equal(t, "image/gif", gif.ContentType)

	_, err = DetectImage([]byte("just some text"))
	assert.ErrorIs(t, err, ErrNotImage)

	_, err = DetectImage(nil)
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestObjectKeyLayout(t *testing.T) {
	key := objectKey(time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), ".png")
	assert.Regexp(t, regexp.MustCompile(`^posts/2024/03/[0-9a-f-]{36}\.png$`), key)
}

type fakeS3 struct {
	puts    []*s3.PutObjectInput
	body    []byte
	deletes []string
	err     error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, in)
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deletes = append(f.deletes, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestR2Store_UploadAndDelete(t *testing.T) {
	fake := &fakeS3{}
	store := newR2Store(fake, "myspace", "https://cdn.example.com/")

	up, err := store.Upload(context.Background(), pngHeader, "image/png")
	require.NoError(t, err)

	require.Len(t, fake.puts, 1)
	assert.Equal(t, "myspace", aws.ToString(fake.puts[0].Bucket))
	assert.Equal(t, "image/png", aws.ToString(fake.puts[0].ContentType))
	assert.Equal(t, pngHeader, fake.body)
	assert.True(t, strings.HasPrefix(up.ID, "posts/"))
	assert.Equal(t, "https://cdn.example.com/"+up.ID, up.URL)

	require.NoError(t, store.Delete(context.Background(), up.ID))
	assert.Equal(t, []string{up.ID}, fake.deletes)

	require.NoError(t, store.Delete(context.Background(), ""))
	assert.Len(t, fake.deletes, 1)
}

func TestR2Store_HostFailure(t *testing.T) {
	fake := &fakeS3{err: errors.New("503 slow down")}
	store := newR2Store(fake, "b", "https://cdn")

	_, err := store.Upload(context.Background(), pngHeader, "image/png")
	assert.ErrorContains(t, err, "503 slow down")
	assert.Error(t, store.Delete(context.Background(), "posts/x.png"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore("")

	up, err := store.Upload(context.Background(), pngHeader, "image/png")
	require.NoError(t, err)
	assert.True(t, store.Has(up.ID))
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(context.Background(), up.ID))
	require.NoError(t, store.Delete(context.Background(), up.ID))
	assert.False(t, store.Has(up.ID))

	store.SetFailures(true, true)
	_, err = store.Upload(context.Background(), pngHeader, "image/png")
	assert.Error(t, err)
	assert.Error(t, store.Delete(context.Background(), "any"))
}

func TestNew_Drivers(t *testing.T) {
	log := logging.Discard()

	s, err := New(context.Background(), config.MediaConfig{Driver: config.MediaMemory}, log)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = New(context.Background(), config.MediaConfig{Driver: config.MediaR2, AccountID: "acct", BucketName: "b", Region: "auto"}, log)
	require.NoError(t, err)
	assert.Equal(t, "https://acct.r2.cloudflarestorage.com/b", s.(*R2Store).baseURL)

	_, err = New(context.Background(), config.MediaConfig{Driver: config.MediaR2, BucketName: "b"}, log)
	assert.Error(t, err)

	_, err = New(context.Background(), config.MediaConfig{Driver: "ftp"}, log)
	assert.Error(t, err)
}
