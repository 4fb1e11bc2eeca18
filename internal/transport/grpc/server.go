package grpcserver

import (
	"context"
	"errors"
	"strconv"

	meterreaderv1 "github.com/milad/meterreader/gen/go/proto/meterreader/v1"
	"github.com/milad/meterreader/internal/auth"
	"github.com/milad/meterreader/internal/domain"
	"github.com/milad/meterreader/internal/service"
	"github.com/milad/meterreader/internal/transport/pbconv"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	msgValueTooLow       = "Value too low"
	msgAddReadingFailure = "Exception during add reading"
)

type Server struct {
	meterreaderv1.UnimplementedMeterReadingServiceServer
	ingest *service.IngestService
	diags  *service.DiagnosticsService
	tokens *auth.Service
	logger *zap.Logger
}

func New(ingest *service.IngestService, diags *service.DiagnosticsService, tokens *auth.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{ingest: ingest, diags: diags, tokens: tokens, logger: logger}
}

func (s *Server) AddReading(ctx context.Context, req *meterreaderv1.ReadingPackage) (*meterreaderv1.StatusMessage, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	batch := pbconv.FromPackage(req)

	st, err := s.ingest.AddReadingBatch(ctx, batch)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			observeBatch(outcomeRejected, len(batch.Readings))
			return nil, s.rejection(ctx, verr)
		}
		var terr *service.MissingTimeError
		if errors.As(err, &terr) {
			observeBatch(outcomeRejected, len(batch.Readings))
			return nil, status.Error(codes.InvalidArgument, terr.Error())
		}
		var ierr *service.InternalError
		if errors.As(err, &ierr) {
			observeBatch(outcomeError, len(batch.Readings))
			return nil, s.internalFault(ctx, ierr)
		}
		observeBatch(outcomeError, len(batch.Readings))
		return nil, status.Error(codes.Internal, "internal error")
	}

	if st == domain.StatusSuccess {
		observeBatch(outcomeAccepted, len(batch.Readings))
	} else {
		observeBatch(outcomeDeclined, len(batch.Readings))
	}
	return &meterreaderv1.StatusMessage{Status: pbconv.ToStatus(st)}, nil
}

func (s *Server) rejection(ctx context.Context, verr *service.ValidationError) error {
	s.logger.Info("reading batch rejected",
		zap.String("field", verr.Field),
		zap.Int32("value", verr.Value),
	)
	_ = grpc.SetTrailer(ctx, metadata.Pairs(
		pbconv.TrailerBadValue, strconv.FormatInt(int64(verr.Value), 10),
		pbconv.TrailerField, verr.Field,
		pbconv.TrailerMessage, verr.Message,
	))

	st := status.New(codes.OutOfRange, msgValueTooLow)
	detailed, err := st.WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{
			Field:       verr.Field,
			Description: verr.Message + ": " + strconv.FormatInt(int64(verr.Value), 10),
		}},
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

func (s *Server) internalFault(ctx context.Context, ierr *service.InternalError) error {
	s.logger.Error("add reading failed", zap.Error(ierr.Cause))
	msg := ierr.Cause.Error()
	_ = grpc.SetTrailer(ctx, metadata.Pairs(pbconv.TrailerException, msg))

	st := status.New(codes.Internal, msgAddReadingFailure)
	detailed, err := st.WithDetails(&errdetails.DebugInfo{Detail: msg})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

func (s *Server) SendDiagnostics(stream grpc.ClientStreamingServer[meterreaderv1.ReadingMessage, emptypb.Empty]) error {
	n, err := s.diags.StreamDiagnostics(stream.Context(), diagnosticStream{stream})
	diagnosticsReadingsTotal.Add(float64(n))
	if err != nil {
		if st, ok := status.FromError(err); ok {
			return st.Err()
		}
		return status.FromContextError(err).Err()
	}
	s.logger.Debug("diagnostics stream drained", zap.Int("readings", n))
	return stream.SendAndClose(&emptypb.Empty{})
}

type diagnosticStream struct {
	grpc.ClientStreamingServer[meterreaderv1.ReadingMessage, emptypb.Empty]
}

func (d diagnosticStream) Recv() (domain.Reading, error) {
	m, err := d.ClientStreamingServer.Recv()
	if err != nil {
		return domain.Reading{}, err
	}
	return pbconv.FromReading(m), nil
}

func (s *Server) CreateToken(ctx context.Context, req *meterreaderv1.TokenRequest) (*meterreaderv1.TokenResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	grant, err := s.tokens.CreateToken(ctx, domain.Credential{
		Username: req.GetUsername(),
		Password: req.GetPassword(),
	})
	if err != nil {
		tokensTotal.WithLabelValues(outcomeError).Inc()
		s.logger.Error("create token failed", zap.Error(err))
		return nil, status.Error(codes.Internal, "token issuance failed")
	}
	if !grant.Success {
		tokensTotal.WithLabelValues(outcomeDenied).Inc()
		return &meterreaderv1.TokenResponse{Success: false}, nil
	}

	tokensTotal.WithLabelValues(outcomeIssued).Inc()
	return &meterreaderv1.TokenResponse{
		Token:      grant.Token,
		Expiration: timestamppb.New(grant.ExpiresAt),
		Success:    true,
	}, nil
}
