// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package oauth

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"github.com/MKhiriev/knolib-identity/models"
)

// Protocol implements a provider whose endpoints or parameter names do not
// follow the OAuth 2.0 code grant closely enough for [golang.org/x/oauth2].
type Protocol interface {
	authCodeURL(e CatalogEntry, c Credentials, state string) string
	exchange(ctx context.Context, client *utils.HTTPClient, e CatalogEntry, c Credentials, code string) (models.NormalizedProfile, error)
}

type customFlow struct {
	entry  CatalogEntry
	creds  Credentials
	client *utils.HTTPClient
}

func (f *customFlow) AuthCodeURL(state string) string {
	return f.entry.Protocol.authCodeURL(f.entry, f.creds, state)
}

func (f *customFlow) Exchange(ctx context.Context, code string) (models.NormalizedProfile, error) {
	profile, err := f.entry.Protocol.exchange(ctx, f.client, f.entry, f.creds, code)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*customFlow.Exchange").Str("provider", f.entry.Name).Msg("provider exchange failed")
		return models.NormalizedProfile{}, err
	}
	if profile.ExternalID == "" {
		return models.NormalizedProfile{}, ErrMissingExternalID
	}
	return profile, nil
}

func buildURL(base string, params url.Values) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + params.Encode()
}

// getJSON issues a GET and decodes the JSON body into dst.
func getJSON(ctx context.Context, client *utils.HTTPClient, endpoint string, params map[string]string, dst any) error {
	resp, err := client.R().SetContext(ctx).SetQueryParams(params).Get(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: decoding response: %w", ErrUpstream, err)
	}
	return nil
}

// ── QQ ────────────────────────────────────────────────────────────────────────

type qqProtocol struct{}

type qqToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Error        int    `json:"error"`
	Description  string `json:"error_description"`
}

type qqOpenID struct {
	OpenID  string `json:"openid"`
	UnionID string `json:"unionid"`
	Error   int    `json:"error"`
}

type qqUser struct {
	Ret      int    `json:"ret"`
	Msg      string `json:"msg"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"figureurl_qq_2"`
	Avatar1  string `json:"figureurl_qq_1"`
}

func (qqProtocol) authCodeURL(e CatalogEntry, c Credentials, state string) string {
	return buildURL(e.Endpoints.AuthURL, url.Values{
		"response_type": {"code"},
		"client_id":     {c.ClientID},
		"redirect_uri":  {c.RedirectURL},
		"state":         {state},
		"scope":         {strings.Join(e.Scopes, ",")},
	})
}

func (qqProtocol) exchange(ctx context.Context, client *utils.HTTPClient, e CatalogEntry, c Credentials, code string) (models.NormalizedProfile, error) {
	var token qqToken
	err := getJSON(ctx, client, e.Endpoints.TokenURL, map[string]string{
		"grant_type":    "authorization_code",
		"client_id":     c.ClientID,
		"client_secret": c.ClientSecret,
		"code":          code,
		"redirect_uri":  c.RedirectURL,
		"fmt":           "json",
	}, &token)
	if err != nil {
		return models.NormalizedProfile{}, err
	}
	if token.Error != 0 || token.AccessToken == "" {
		return models.NormalizedProfile{}, fmt.Errorf("%w: token error %d %s", ErrUpstream, token.Error, token.Description)
	}

	var me qqOpenID
	err = getJSON(ctx, client, e.Endpoints.OpenIDURL, map[string]string{
		"access_token": token.AccessToken,
		"unionid":      "1",
		"fmt":          "json",
	}, &me)
	if err != nil {
		return models.NormalizedProfile{}, err
	}
	if me.Error != 0 {
		return models.NormalizedProfile{}, fmt.Errorf("%w: openid error %d", ErrUpstream, me.Error)
	}

	var user qqUser
	err = getJSON(ctx, client, e.Endpoints.UserInfoURL, map[string]string{
		"access_token":       token.AccessToken,
		"oauth_consumer_key": c.ClientID,
		"openid":             me.OpenID,
	}, &user)
	if err != nil {
		return models.NormalizedProfile{}, err
	}
	if user.Ret != 0 {
		return models.NormalizedProfile{}, fmt.Errorf("%w: userinfo error %d %s", ErrUpstream, user.Ret, user.Msg)
	}

	avatar := user.Avatar
	if avatar == "" {
		avatar = user.Avatar1
	}
	// QQ never discloses an email address
	return models.NormalizedProfile{
		ExternalID:   firstNonEmpty(me.UnionID, me.OpenID),
		DisplayName:  models.StringPtr(user.Nickname),
		Avatar:       models.StringPtr(avatar),
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

// ── WeChat ────────────────────────────────────────────────────────────────────

type wechatProtocol struct{}

type wechatToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	OpenID       string `json:"openid"`
	UnionID      string `json:"unionid"`
	ErrCode      int    `json:"errcode"`
	ErrMsg       string `json:"errmsg"`
}

type wechatUser struct {
	OpenID     string `json:"openid"`
	UnionID    string `json:"unionid"`
	Nickname   string `json:"nickname"`
	HeadImgURL string `json:"headimgurl"`
	ErrCode    int    `json:"errcode"`
	ErrMsg     string `json:"errmsg"`
}

func (wechatProtocol) authCodeURL(e CatalogEntry, c Credentials, state string) string {
	return buildURL(e.Endpoints.AuthURL, url.Values{
		"appid":         {c.ClientID},
		"redirect_uri":  {c.RedirectURL},
		"response_type": {"code"},
		"scope":         {strings.Join(e.Scopes, ",")},
		"state":         {state},
	}) + "#wechat_redirect"
}

func (wechatProtocol) exchange(ctx context.Context, client *utils.HTTPClient, e CatalogEntry, c Credentials, code string) (models.NormalizedProfile, error) {
	var token wechatToken
	err := getJSON(ctx, client, e.Endpoints.TokenURL, map[string]string{
		"appid":      c.ClientID,
		"secret":     c.ClientSecret,
		"code":       code,
		"grant_type": "authorization_code",
	}, &token)
	if err != nil {
		return models.NormalizedProfile{}, err
	}
	if token.ErrCode != 0 || token.AccessToken == "" {
		return models.NormalizedProfile{}, fmt.Errorf("%w: token error %d %s", ErrUpstream, token.ErrCode, token.ErrMsg)
	}

	var user wechatUser
	err = getJSON(ctx, client, e.Endpoints.UserInfoURL, map[string]string{
		"access_token": token.AccessToken,
		"openid":       token.OpenID,
	}, &user)
	if err != nil {
		return models.NormalizedProfile{}, err
	}
	if user.ErrCode != 0 {
		return models.NormalizedProfile{}, fmt.Errorf("%w: userinfo error %d %s", ErrUpstream, user.ErrCode, user.ErrMsg)
	}

	// the union id is stable across all apps of one WeChat developer account
	return models.NormalizedProfile{
		ExternalID:   firstNonEmpty(user.UnionID, token.UnionID, user.OpenID, token.OpenID),
		DisplayName:  models.StringPtr(user.Nickname),
		Avatar:       models.StringPtr(user.HeadImgURL),
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}

// ── Weibo ─────────────────────────────────────────────────────────────────────

type weiboProtocol struct{}

type weiboToken struct {
	AccessToken string `json:"access_token"`
	UID         string `json:"uid"`
	Error       string `json:"error"`
	ErrorCode   int    `json:"error_code"`
}

type weiboUser struct {
	IDStr      string `json:"idstr"`
	ScreenName string `json:"screen_name"`
	Avatar     string `json:"avatar_large"`
	Error      string `json:"error"`
	ErrorCode  int    `json:"error_code"`
}

func (weiboProtocol) authCodeURL(e CatalogEntry, c Credentials, state string) string {
	params := url.Values{
		"client_id":     {c.ClientID},
		"redirect_uri":  {c.RedirectURL},
		"response_type": {"code"},
		"state":         {state},
	}
	if len(e.Scopes) > 0 {
		params.Set("scope", strings.Join(e.Scopes, ","))
	}
	return buildURL(e.Endpoints.AuthURL, params)
}

func (weiboProtocol) exchange(ctx context.Context, client *utils.HTTPClient, e CatalogEntry, c Credentials, code string) (models.NormalizedProfile, error) {
	resp, err := client.R().SetContext(ctx).SetFormData(map[string]string{
		"client_id":     c.ClientID,
		"client_secret": c.ClientSecret,
		"grant_type":    "authorization_code",
		"code":          code,
		"redirect_uri":  c.RedirectURL,
	}).Post(e.Endpoints.TokenURL)
	if err != nil {
		return models.NormalizedProfile{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if resp.IsError() {
		return models.NormalizedProfile{}, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode())
	}

	var token weiboToken
	if err := json.Unmarshal(resp.Body(), &token); err != nil {
		return models.NormalizedProfile{}, fmt.Errorf("%w: decoding response: %w", ErrUpstream, err)
	}
	if token.ErrorCode != 0 || token.AccessToken == "" {
		return models.NormalizedProfile{}, fmt.Errorf("%w: token error %d %s", ErrUpstream, token.ErrorCode, token.Error)
	}

	var user weiboUser
	err = getJSON(ctx, client, e.Endpoints.UserInfoURL, map[string]string{
		"access_token": token.AccessToken,
		"uid":          token.UID,
	}, &user)
	if err != nil {
		return models.NormalizedProfile{}, err
	}
	if user.ErrorCode != 0 {
		return models.NormalizedProfile{}, fmt.Errorf("%w: userinfo error %d %s", ErrUpstream, user.ErrorCode, user.Error)
	}

	return models.NormalizedProfile{
		ExternalID:  firstNonEmpty(user.IDStr, token.UID),
		DisplayName: models.StringPtr(user.ScreenName),
		Avatar:      models.StringPtr(user.Avatar),
		AccessToken: token.AccessToken,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
