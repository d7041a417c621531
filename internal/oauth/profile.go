// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/knolib-identity/models"
)

// FieldMapping names the userinfo JSON keys holding each profile field.
type FieldMapping struct {
	ID          string
	Email       string
	DisplayName string
	Avatar      string
	// DisplayNameFallback is consulted when DisplayName is absent or empty.
	DisplayNameFallback string
	// EmailVerified names the provider's verification flag. When set, the
	// email is kept only if the flag is true.
	EmailVerified string
}

// Map decodes a userinfo payload into a normalized profile. Numeric ids are
// kept in their decimal form.
func (m FieldMapping) Map(body []byte) (models.NormalizedProfile, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return models.NormalizedProfile{}, fmt.Errorf("%w: decoding profile: %w", ErrUpstream, err)
	}

	profile := models.NormalizedProfile{
		ExternalID: scalar(fields[m.ID]),
	}
	if profile.ExternalID == "" {
		return models.NormalizedProfile{}, ErrMissingExternalID
	}

	if m.Email != "" && (m.EmailVerified == "" || scalar(fields[m.EmailVerified]) == "true") {
		profile.Email = models.StringPtr(strings.TrimSpace(scalar(fields[m.Email])))
	}
	name := scalar(fields[m.DisplayName])
	if name == "" && m.DisplayNameFallback != "" {
		name = scalar(fields[m.DisplayNameFallback])
	}
	profile.DisplayName = models.StringPtr(name)
	if m.Avatar != "" {
		profile.Avatar = models.StringPtr(scalar(fields[m.Avatar]))
	}

	return profile, nil
}

// scalar renders a JSON string, number or boolean as text. Null, missing
// and composite values yield "".
func scalar(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	default:
		return string(raw)
	}
}
