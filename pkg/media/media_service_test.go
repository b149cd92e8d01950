package media

import (
	"PantryTrack-Backend/domain"
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type s3Mock struct {
	uploaded    []byte
	contentType string
	deletedKey  string
}

func (m *s3Mock) UploadUserFile(_ context.Context, userID string, data []byte, contentType string, _ ...string) (string, error) {
	m.uploaded = data
	m.contentType = contentType
	return userID + "/1700000000000000000-cafe.jpg", nil
}

func (m *s3Mock) DeleteFile(_ context.Context, objectKey string) error {
	m.deletedKey = objectKey
	return nil
}

func (m *s3Mock) GetPublicLinkKey(objectKey string) string {
	return "https://pantry.s3.eu-west-1.amazonaws.com/" + objectKey
}

func (m *s3Mock) GetObjectKeyFromLink(link string) string {
	prefix := "https://pantry.s3.eu-west-1.amazonaws.com/"
	if len(link) <= len(prefix) || link[:len(prefix)] != prefix {
		return ""
	}
	return link[len(prefix):]
}

const userID = "5d4c3b2a-aaaa-bbbb-cccc-ddddeeeeffff"

func TestUploadPhotoReturnsPublicURL(t *testing.T) {
	t.Parallel()

	s3 := &s3Mock{}
	svc := NewMediaService(s3)

	res, err := svc.UploadPhoto(context.Background(), domain.UploadPhotoRequest{
		Image:       base64.StdEncoding.EncodeToString([]byte("fake-jpeg-bytes")),
		ContentType: "image/png",
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, []byte("fake-jpeg-bytes"), s3.uploaded)
	assert.Equal(t, "image/png", s3.contentType)
	assert.Contains(t, res.URL, "https://pantry.s3.eu-west-1.amazonaws.com/"+userID+"/")
}

func TestUploadPhotoDefaultsContentType(t *testing.T) {
	t.Parallel()

	s3 := &s3Mock{}
	svc := NewMediaService(s3)

	_, err := svc.UploadPhoto(context.Background(), domain.UploadPhotoRequest{
		Image: base64.StdEncoding.EncodeToString([]byte("x")),
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", s3.contentType)
}

func TestUploadPhotoRejectsBadBase64(t *testing.T) {
	t.Parallel()

	svc := NewMediaService(&s3Mock{})

	_, err := svc.UploadPhoto(context.Background(), domain.UploadPhotoRequest{
		Image: "not$$base64!!",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidImageData)
}

func TestDeletePhotoOwnedKey(t *testing.T) {
	t.Parallel()

	s3 := &s3Mock{}
	svc := NewMediaService(s3)

	err := svc.DeletePhoto(context.Background(), domain.DeletePhotoRequest{
		URL: "https://pantry.s3.eu-west-1.amazonaws.com/" + userID + "/1700000000000000000-cafe.jpg",
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, userID+"/1700000000000000000-cafe.jpg", s3.deletedKey)
}

func TestDeletePhotoForeignKey(t *testing.T) {
	t.Parallel()

	s3 := &s3Mock{}
	svc := NewMediaService(s3)

	err := svc.DeletePhoto(context.Background(), domain.DeletePhotoRequest{
		URL: "https://pantry.s3.eu-west-1.amazonaws.com/other-user/1700000000000000000-cafe.jpg",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrPhotoNotOwned)
	assert.Empty(t, s3.deletedKey)
}

func TestDeletePhotoUnmanagedURL(t *testing.T) {
	t.Parallel()

	svc := NewMediaService(&s3Mock{})

	err := svc.DeletePhoto(context.Background(), domain.DeletePhotoRequest{
		URL: "https://example.com/some/image.jpg",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidPhotoURL)
}
