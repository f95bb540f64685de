package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"foodgram/internal/utils/storage"
)

const fakeBucketURL = "https://bucket.test/"

// FakeS3 keeps uploaded objects in memory.
type FakeS3 struct {
	mu      sync.Mutex
	Objects map[string][]byte
	next    int
}

func NewFakeS3() *FakeS3 {
	return &FakeS3{Objects: map[string][]byte{}}
}

func (f *FakeS3) UploadBase64Image(_ context.Context, data string, folder string) (string, error) {
	content, _, ext, err := storage.DecodeBase64Image(data)
	if err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	key := fmt.Sprintf("%s/%d%s", folder, f.next, ext)
	f.Objects[key] = content
	return key, nil
}

func (f *FakeS3) DeleteFile(_ context.Context, objectKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.Objects, objectKey)
	return nil
}

func (f *FakeS3) GetPublicLinkKey(objectKey string) string {
	return fakeBucketURL + objectKey
}

func (f *FakeS3) GetObjectKeyFromLink(link string) string {
	if !strings.HasPrefix(link, fakeBucketURL) {
		return ""
	}
	return strings.TrimPrefix(link, fakeBucketURL)
}

func (f *FakeS3) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Objects)
}

// FakeMailer never sends; Enabled reports false so no goroutine is started.
type FakeMailer struct{}

func (FakeMailer) Enabled() bool                 { return false }
func (FakeMailer) SendMail(_, _, _ string) error { return nil }

// PNG is a tiny base64 data URI accepted by the image decoder.
const PNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="
