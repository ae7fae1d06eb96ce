package pagination_test

import (
	"testing"
	"time"

	"github.com/poscore/cashdesk_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	createdAt := time.Date(2025, 11, 3, 21, 45, 12, 345678000, time.UTC)
	id := "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"

	token := pagination.EncodeToken(createdAt, id)
	gotTime, gotID, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, createdAt.Equal(gotTime))
	assert.Equal(t, id, gotID)
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-valid-base64!!!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	token := pagination.EncodeDateBasedToken(time.Now())
	_, _, err := pagination.DecodeToken(token)
	require.Error(t, err)
}

func TestEncodeDecodeDateBasedToken_RoundTrip(t *testing.T) {
	date := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)

	token := pagination.EncodeDateBasedToken(date)
	got, err := pagination.DecodeDateBasedToken(token)

	require.NoError(t, err)
	assert.True(t, date.Equal(got))
}
