// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package oauth resolves configured identity providers into runnable
// authorization flows.
//
// Providers come in two variants. Standard providers (Google, GitHub, Gitee)
// follow the OAuth 2.0 authorization code grant and expose a bearer-protected
// userinfo endpoint whose fields are mapped through a [FieldMapping].
// Custom providers (QQ, WeChat, Weibo) use bespoke endpoints and parameter
// names and are implemented as dedicated protocols.
//
// Provider configuration lives in the database and is re-read on every
// call to the [Registry]; the static [Catalog] only knows endpoints and
// profile shapes.
package oauth
