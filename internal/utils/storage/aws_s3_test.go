package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildObjectKeyIsUserNamespaced(t *testing.T) {
	t.Parallel()

	key := buildObjectKey("user-123", "image/png")
	assert.True(t, strings.HasPrefix(key, "user-123/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
}

func TestBuildObjectKeyUnique(t *testing.T) {
	t.Parallel()

	a := buildObjectKey("u", "image/jpeg")
	b := buildObjectKey("u", "image/jpeg")
	assert.NotEqual(t, a, b)
}

func TestKeyOwnedBy(t *testing.T) {
	t.Parallel()

	assert.True(t, KeyOwnedBy("user-1/169-abc.jpg", "user-1"))
	assert.False(t, KeyOwnedBy("user-10/169-abc.jpg", "user-1"))
	assert.False(t, KeyOwnedBy("other/169-abc.jpg", "user-1"))
	assert.False(t, KeyOwnedBy("user-1", "user-1"))
}

func TestPublicLinkRoundTrip(t *testing.T) {
	t.Parallel()

	a := &awsS3{bucket: "pantry-photos", region: "ap-southeast-1"}

	link := a.GetPublicLinkKey("user-1/1-ff.jpg")
	assert.Equal(t, "https://pantry-photos.s3.ap-southeast-1.amazonaws.com/user-1/1-ff.jpg", link)
	assert.Equal(t, "user-1/1-ff.jpg", a.GetObjectKeyFromLink(link))
	assert.Equal(t, "", a.GetObjectKeyFromLink("https://elsewhere.example.com/user-1/1-ff.jpg"))
}

func TestTypeAllowed(t *testing.T) {
	t.Parallel()

	assert.True(t, typeAllowed("image/png", AllowImage))
	assert.False(t, typeAllowed("application/zip", AllowImage))
}
