// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import "golang.org/x/oauth2"

// Kind tags the flow variant of a catalog entry.
type Kind string

const (
	KindStandard Kind = "standard"
	KindCustom   Kind = "custom"
)

// Endpoints are the provider URLs a flow talks to. Tests point them at
// httptest servers.
type Endpoints struct {
	AuthURL     string
	TokenURL    string
	UserInfoURL string
	// EmailsURL lists the account's addresses when the profile hides them
	// (GitHub).
	EmailsURL string
	// OpenIDURL resolves the account id from an access token (QQ).
	OpenIDURL string
}

// CatalogEntry describes how to talk to one provider.
type CatalogEntry struct {
	Name      string
	Kind      Kind
	Endpoints Endpoints
	Scopes    []string

	// standard variant
	Fields    FieldMapping
	AuthStyle oauth2.AuthStyle
	// TokenInQuery sends the access token as a query parameter instead of an
	// Authorization header when fetching the profile.
	TokenInQuery bool

	// custom variant
	Protocol Protocol
}

// Catalog maps provider names to their entries.
type Catalog map[string]CatalogEntry

// Lookup returns the entry registered for name.
func (c Catalog) Lookup(name string) (CatalogEntry, bool) {
	e, ok := c[name]
	return e, ok
}

// WithEndpoints returns a copy of the catalog where the entry for name uses
// the given endpoints.
func (c Catalog) WithEndpoints(name string, endpoints Endpoints) Catalog {
	out := make(Catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	if e, ok := out[name]; ok {
		e.Endpoints = endpoints
		out[name] = e
	}
	return out
}

// DefaultCatalog returns the built-in provider catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		"google": {
			Name: "google",
			Kind: KindStandard,
			Endpoints: Endpoints{
				AuthURL:     "https://accounts.google.com/o/oauth2/auth",
				TokenURL:    "https://oauth2.googleapis.com/token",
				UserInfoURL: "https://openidconnect.googleapis.com/v1/userinfo",
			},
			Scopes:    []string{"openid", "email", "profile"},
			Fields: FieldMapping{
				ID: "sub", Email: "email", DisplayName: "name", Avatar: "picture",
				EmailVerified: "email_verified",
			},
			AuthStyle: oauth2.AuthStyleInParams,
		},
		"github": {
			Name: "github",
			Kind: KindStandard,
			Endpoints: Endpoints{
				AuthURL:     "https://github.com/login/oauth/authorize",
				TokenURL:    "https://github.com/login/oauth/access_token",
				UserInfoURL: "https://api.github.com/user",
				EmailsURL:   "https://api.github.com/user/emails",
			},
			Scopes: []string{"read:user", "user:email"},
			Fields: FieldMapping{
				ID: "id", Email: "email", DisplayName: "name", Avatar: "avatar_url",
				DisplayNameFallback: "login",
			},
			AuthStyle: oauth2.AuthStyleInParams,
		},
		"gitee": {
			Name: "gitee",
			Kind: KindStandard,
			Endpoints: Endpoints{
				AuthURL:     "https://gitee.com/oauth/authorize",
				TokenURL:    "https://gitee.com/oauth/token",
				UserInfoURL: "https://gitee.com/api/v5/user",
			},
			Scopes: []string{"user_info", "emails"},
			Fields: FieldMapping{
				ID: "id", Email: "email", DisplayName: "name", Avatar: "avatar_url",
				DisplayNameFallback: "login",
			},
			AuthStyle:    oauth2.AuthStyleInParams,
			TokenInQuery: true,
		},
		"qq": {
			Name: "qq",
			Kind: KindCustom,
			Endpoints: Endpoints{
				AuthURL:     "https://graph.qq.com/oauth2.0/authorize",
				TokenURL:    "https://graph.qq.com/oauth2.0/token",
				OpenIDURL:   "https://graph.qq.com/oauth2.0/me",
				UserInfoURL: "https://graph.qq.com/user/get_user_info",
			},
			Scopes:   []string{"get_user_info"},
			Protocol: qqProtocol{},
		},
		"wechat": {
			Name: "wechat",
			Kind: KindCustom,
			Endpoints: Endpoints{
				AuthURL:     "https://open.weixin.qq.com/connect/qrconnect",
				TokenURL:    "https://api.weixin.qq.com/sns/oauth2/access_token",
				UserInfoURL: "https://api.weixin.qq.com/sns/userinfo",
			},
			Scopes:   []string{"snsapi_login"},
			Protocol: wechatProtocol{},
		},
		"weibo": {
			Name: "weibo",
			Kind: KindCustom,
			Endpoints: Endpoints{
				AuthURL:     "https://api.weibo.com/oauth2/authorize",
				TokenURL:    "https://api.weibo.com/oauth2/access_token",
				UserInfoURL: "https://api.weibo.com/2/users/show.json",
			},
			Protocol: weiboProtocol{},
		},
	}
}
