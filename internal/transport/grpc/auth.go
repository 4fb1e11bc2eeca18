package grpcserver

import (
	"context"
	"strings"

	meterreaderv1 "github.com/milad/meterreader/gen/go/proto/meterreader/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TokenVerifier validates a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type subjectKey struct{}

// SubjectFromContext returns the authenticated subject set by the interceptors.
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(subjectKey{}).(string)
	return sub, ok
}

const healthServicePrefix = "/grpc.health.v1.Health/"

func isPublicMethod(fullMethod string) bool {
	return fullMethod == meterreaderv1.MeterReadingService_CreateToken_FullMethodName ||
		strings.HasPrefix(fullMethod, healthServicePrefix)
}

// BearerToken extracts the token from "authorization: Bearer <token>" metadata.
func BearerToken(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	for _, v := range md.Get("authorization") {
		scheme, tok, found := strings.Cut(v, " ")
		if found && strings.EqualFold(scheme, "Bearer") && strings.TrimSpace(tok) != "" {
			return strings.TrimSpace(tok), true
		}
	}
	return "", false
}

func authenticate(ctx context.Context, v TokenVerifier, logger *zap.Logger, fullMethod string) (context.Context, error) {
	tok, ok := BearerToken(ctx)
	if !ok {
		authFailuresTotal.WithLabelValues(fullMethod).Inc()
		return nil, status.Error(codes.Unauthenticated, "missing bearer token")
	}
	sub, err := v.Verify(tok)
	if err != nil {
		authFailuresTotal.WithLabelValues(fullMethod).Inc()
		logger.Debug("bearer token rejected", zap.String("method", fullMethod), zap.Error(err))
		return nil, status.Error(codes.Unauthenticated, "invalid bearer token")
	}
	return context.WithValue(ctx, subjectKey{}, sub), nil
}

// UnaryAuthInterceptor rejects unary calls without a valid bearer token.
func UnaryAuthInterceptor(v TokenVerifier, logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if isPublicMethod(info.FullMethod) {
			return handler(ctx, req)
		}
		ctx, err := authenticate(ctx, v, logger, info.FullMethod)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamAuthInterceptor rejects streaming calls without a valid bearer token.
func StreamAuthInterceptor(v TokenVerifier, logger *zap.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if isPublicMethod(info.FullMethod) {
			return handler(srv, ss)
		}
		ctx, err := authenticate(ss.Context(), v, logger, info.FullMethod)
		if err != nil {
			return err
		}
		return handler(srv, &authedStream{ServerStream: ss, ctx: ctx})
	}
}

type authedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authedStream) Context() context.Context { return s.ctx }
