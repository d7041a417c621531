// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"strings"

	"github.com/MKhiriev/knolib-identity/internal/logger"
	"github.com/MKhiriev/knolib-identity/internal/service"
	"github.com/MKhiriev/knolib-identity/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	PrincipalsServiceName = "knolib.identity.v1.Principals"
	VerifyFullMethod      = "/" + PrincipalsServiceName + "/Verify"
)

// PrincipalsServer verifies session tokens for other knolib services. The
// messages are protobuf well-known types so callers need no generated code.
type PrincipalsServer interface {
	Verify(ctx context.Context, token *wrapperspb.StringValue) (*structpb.Struct, error)
}

// PrincipalsServiceDesc describes knolib.identity.v1.Principals.
var PrincipalsServiceDesc = grpc.ServiceDesc{
	ServiceName: PrincipalsServiceName,
	HandlerType: (*PrincipalsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Verify",
			Handler:    verifyHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "knolib/identity/v1/principals.proto",
}

func verifyHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PrincipalsServer).Verify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VerifyFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PrincipalsServer).Verify(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Verify accepts a bare session token or an Authorization header value and
// returns the principal behind it. The account is re-read, so deactivated
// users are rejected with Unauthenticated.
func (h *Handler) Verify(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	log := logger.FromContext(ctx)

	token := strings.TrimSpace(in.GetValue())
	if strings.ContainsRune(token, ' ') {
		parsed, err := utils.ParseBearerToken(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, service.ErrUnauthorized.Error())
		}
		token = parsed
	}
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, service.ErrUnauthorized.Error())
	}

	principal, err := h.services.SessionService.Authorize(ctx, token)
	if err != nil {
		log.Debug().Err(err).Str("func", "*Handler.Verify").Msg("token rejected")
		return nil, toStatus(err)
	}

	out, err := structpb.NewStruct(map[string]any{
		"user_id":   principal.UserID,
		"role":      principal.Role.String(),
		"is_active": true,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.Verify").Msg("failed to build principal")
		return nil, status.Error(codes.Internal, "internal error")
	}
	return out, nil
}
