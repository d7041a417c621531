// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import (
	"testing"

	"github.com/MKhiriev/knolib-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMapping_Map(t *testing.T) {
	google := FieldMapping{ID: "sub", Email: "email", DisplayName: "name", Avatar: "picture"}
	github := FieldMapping{ID: "id", Email: "email", DisplayName: "name", Avatar: "avatar_url", DisplayNameFallback: "login"}

	t.Run("string id and all fields", func(t *testing.T) {
		p, err := google.Map([]byte(`{"sub":"1098","email":"a@gmail.com","name":"Ann","picture":"https://img/a"}`))
		require.NoError(t, err)
		assert.Equal(t, "1098", p.ExternalID)
		assert.Equal(t, "a@gmail.com", *p.Email)
		assert.Equal(t, "Ann", *p.DisplayName)
		assert.Equal(t, "https://img/a", *p.Avatar)
	})

	t.Run("numeric id, null email, fallback name", func(t *testing.T) {
		p, err := github.Map([]byte(`{"id":583231,"login":"octocat","name":null,"email":null,"avatar_url":""}`))
		require.NoError(t, err)
		assert.Equal(t, "583231", p.ExternalID)
		assert.Nil(t, p.Email)
		assert.Equal(t, "octocat", *p.DisplayName)
		assert.Nil(t, p.Avatar)
	})

	t.Run("verification flag", func(t *testing.T) {
		fields := DefaultCatalog()["google"].Fields
		tests := []struct {
			name string
			body string
			want *string
		}{
			{name: "verified", body: `{"sub":"1","email":"ann@example.com","email_verified":true}`, want: models.StringPtr("ann@example.com")},
			{name: "verified as string", body: `{"sub":"1","email":"ann@example.com","email_verified":"true"}`, want: models.StringPtr("ann@example.com")},
			{name: "unverified", body: `{"sub":"1","email":"victim@example.com","email_verified":false}`},
			{name: "flag missing", body: `{"sub":"1","email":"victim@example.com"}`},
			{name: "flag null", body: `{"sub":"1","email":"victim@example.com","email_verified":null}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p, err := fields.Map([]byte(tt.body))
				require.NoError(t, err)
				assert.Equal(t, "1", p.ExternalID)
				assert.Equal(t, tt.want, p.Email)
			})
		}
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := google.Map([]byte(`{"email":"a@gmail.com"}`))
		assert.ErrorIs(t, err, ErrMissingExternalID)
	})

	t.Run("malformed payload", func(t *testing.T) {
		_, err := google.Map([]byte(`<html>`))
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestScalar(t *testing.T) {
	tests := map[string]string{
		``:            "",
		`null`:        "",
		`"x"`:         "x",
		`12`:          "12",
		`true`:        "true",
		`{"a":1}`:     "",
		`["a"]`:       "",
		`"été"`: "été",
	}
	for in, want := range tests {
		assert.Equal(t, want, scalar([]byte(in)), in)
	}
}
