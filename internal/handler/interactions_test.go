package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pupperhq/pupper-api/internal/domain"
)

func bearerToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return "Bearer " + signed
}

func newInteractionHandler(interactions InteractionStore, dogs DogStore) *InteractionHandler {
	h := NewInteractionHandler(interactions, dogs, zerolog.Nop())
	h.now = func() time.Time {
		return time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	}
	return h
}

func TestInteractionHandler_Create_NoIdentity(t *testing.T) {
	h := newInteractionHandler(new(MockInteractionStore), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewBufferString(`{"dogId": "dog-1", "interaction": "LIKE"}`))
	h.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message": "Unauthorized"}`, rec.Body.String())
}

func TestInteractionHandler_Create_MalformedToken(t *testing.T) {
	h := newInteractionHandler(new(MockInteractionStore), nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewBufferString(`{"dogId": "dog-1", "interaction": "LIKE"}`))
	req.Header.Set("Authorization", "Bearer not.a.valid.token")
	h.Create(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message": "Unauthorized"}`, rec.Body.String())
}

func TestInteractionHandler_Create_InvalidRequest(t *testing.T) {
	h := newInteractionHandler(new(MockInteractionStore), nil)

	cases := []struct {
		name string
		body string
	}{
		{"missing dogId", `{"interaction": "LIKE"}`},
		{"missing interaction", `{"dogId": "dog-1"}`},
		{"unknown interaction", `{"dogId": "dog-1", "interaction": "MAYBE"}`},
		{"lowercase interaction", `{"dogId": "dog-1", "interaction": "like"}`},
		{"empty body", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewBufferString(tc.body))
			req.Header.Set("Authorization", bearerToken(t, "pupper-user"))
			h.Create(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"message": "Invalid request"}`, rec.Body.String())
		})
	}
}

func TestInteractionHandler_Create_RecordsLike(t *testing.T) {
	interactions := new(MockInteractionStore)
	interactions.On("Put", mock.Anything, &domain.Interaction{
		UserID:      "pupper-user",
		DogID:       "dog-1",
		Interaction: domain.InteractionLike,
		Timestamp:   "2026-08-29T10:30:00Z",
	}).Return(nil)
	h := newInteractionHandler(interactions, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewBufferString(`{"dogId": "dog-1", "interaction": "LIKE"}`))
	req.Header.Set("Authorization", bearerToken(t, "pupper-user"))
	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Interaction recorded"}`, rec.Body.String())
	interactions.AssertExpectations(t)
}

func TestInteractionHandler_Create_OverwritesEarlierReaction(t *testing.T) {
	var recorded []domain.Interaction
	interactions := new(MockInteractionStore)
	interactions.On("Put", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			recorded = append(recorded, *args.Get(1).(*domain.Interaction))
		}).
		Return(nil)
	h := newInteractionHandler(interactions, nil)

	for _, body := range []string{
		`{"dogId": "dog-1", "interaction": "LIKE"}`,
		`{"dogId": "dog-1", "interaction": "DISLIKE"}`,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewBufferString(body))
		req.Header.Set("Authorization", bearerToken(t, "pupper-user"))
		h.Create(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// Both writes target the same (user, dog) key, so the second replaces the
	// first in storage.
	require.Len(t, recorded, 2)
	assert.Equal(t, recorded[0].UserID, recorded[1].UserID)
	assert.Equal(t, recorded[0].DogID, recorded[1].DogID)
	assert.Equal(t, domain.InteractionDislike, recorded[1].Interaction)
}

func TestInteractionHandler_Likes_NoIdentity(t *testing.T) {
	h := newInteractionHandler(new(MockInteractionStore), nil)

	rec := httptest.NewRecorder()
	h.Likes(rec, httptest.NewRequest(http.MethodGet, "/likes", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message": "Unauthorized"}`, rec.Body.String())
}

func TestInteractionHandler_Likes_Empty(t *testing.T) {
	interactions := new(MockInteractionStore)
	interactions.On("LikedDogIDs", mock.Anything, "pupper-user").Return([]string{}, nil)
	h := newInteractionHandler(interactions, new(MockDogStore))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/likes", nil)
	req.Header.Set("Authorization", bearerToken(t, "pupper-user"))
	h.Likes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestInteractionHandler_Likes_ExpandsAndSkipsMissing(t *testing.T) {
	interactions := new(MockInteractionStore)
	interactions.On("LikedDogIDs", mock.Anything, "pupper-user").
		Return([]string{"dog-1", "dog-gone", "dog-3"}, nil)

	dogs := new(MockDogStore)
	dogs.On("Get", mock.Anything, "dog-1").Return(&domain.Dog{ID: "dog-1", Name: "Rex"}, nil)
	dogs.On("Get", mock.Anything, "dog-gone").Return(nil, nil)
	dogs.On("Get", mock.Anything, "dog-3").Return(&domain.Dog{ID: "dog-3", Name: "Daisy"}, nil)

	h := newInteractionHandler(interactions, dogs)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/likes", nil)
	req.Header.Set("Authorization", bearerToken(t, "pupper-user"))
	h.Likes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var liked []domain.Dog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &liked))
	require.Len(t, liked, 2)
	assert.Equal(t, "Rex", liked[0].Name)
	assert.Equal(t, "Daisy", liked[1].Name)
	dogs.AssertExpectations(t)
}
