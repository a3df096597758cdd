package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/flowmotion/internal/api"
	errorvalues "github.com/limbo/flowmotion/internal/error_values"
	"github.com/limbo/flowmotion/pkg/entity"
	jwtservice "github.com/limbo/flowmotion/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()
	s := jwtservice.New("secret")
	pc := &entity.PageContext{ID: uuid.New(), URL: "http://app.test/dashboard/"}

	token, err := s.GenerateToken(pc)
	require.NoError(t, err)
	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, pc.ID.String(), claims.ContextID)
	assert.Equal(t, pc.URL, claims.PageURL)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseRejects(t *testing.T) {
	t.Parallel()
	s := jwtservice.New("secret")
	pc := &entity.PageContext{ID: uuid.New()}
	foreign, err := jwtservice.New("other").GenerateToken(pc)
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &api.JWTClaims{
		ContextID: pc.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &api.JWTClaims{
		ContextID: pc.ID.String(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		Desc  string
		Token string
	}{
		{Desc: "garbage", Token: "not-a-token"},
		{Desc: "other secret", Token: foreign},
		{Desc: "expired", Token: expired},
		{Desc: "none algorithm", Token: unsigned},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.ParseToken(tc.Token)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}
