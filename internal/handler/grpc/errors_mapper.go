// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"errors"

	"github.com/MKhiriev/knolib-identity/internal/service"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorCodeMap is matched in order, like the HTTP status map.
var errorCodeMap = []struct {
	err  error
	code codes.Code
}{
	{service.ErrUnauthorized, codes.Unauthenticated},
	{service.ErrInvalidCredentials, codes.Unauthenticated},
	{service.ErrForbidden, codes.PermissionDenied},
	{service.ErrAccountDisabled, codes.PermissionDenied},
	{service.ErrRateLimited, codes.ResourceExhausted},
	{service.ErrNotFound, codes.NotFound},
	{service.ErrProviderNotFound, codes.NotFound},
	{service.ErrProviderUnavailable, codes.Unavailable},
	{service.ErrInvalidRequest, codes.InvalidArgument},
}

// toStatus converts a service error into a gRPC status. Messages are the
// taxonomy sentinels only; wrapped causes stay in the logs.
func toStatus(err error) error {
	for _, entry := range errorCodeMap {
		if errors.Is(err, entry.err) {
			return status.Error(entry.code, entry.err.Error())
		}
	}
	return status.Error(codes.Internal, service.ErrInternal.Error())
}
