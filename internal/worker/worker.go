package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/milad/meterreader/internal/domain"
	"github.com/milad/meterreader/internal/transport/pbconv"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	DefaultBatchSize      = 5
	DefaultRequestTimeout = 5 * time.Second
	DefaultNotes          = "From the client"
)

// Outcome summarizes one submission cycle.
type Outcome string

const (
	OutcomeSubmitted       Outcome = "submitted"
	OutcomeDeclined        Outcome = "declined"
	OutcomeRejected        Outcome = "rejected"
	OutcomeUnauthenticated Outcome = "unauthenticated"
	OutcomeAuthFailed      Outcome = "auth_failed"
	OutcomeTransportError  Outcome = "transport_error"
	OutcomeCollectError    Outcome = "collect_error"
	OutcomeCancelled       Outcome = "cancelled"
)

// ReadingGenerator produces one reading for a customer.
type ReadingGenerator interface {
	Generate(ctx context.Context, customerID int32) (domain.Reading, error)
}

type Config struct {
	CustomerID       int32
	BatchSize        int
	PollInterval     time.Duration
	Credential       domain.Credential
	DiagnosticsEvery int
	RequestTimeout   time.Duration
	Notes            string
}

// Worker periodically collects a batch of readings and submits it.
type Worker struct {
	cfg    Config
	client MeterReadingClient
	tokens *TokenManager
	source ReadingGenerator
	logger *zap.Logger

	cycles int
}

func New(cfg Config, client MeterReadingClient, tokens *TokenManager, source ReadingGenerator, logger *zap.Logger) *Worker {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Notes == "" {
		cfg.Notes = DefaultNotes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{cfg: cfg, client: client, tokens: tokens, source: source, logger: logger}
}

// Run repeats RunOnce every poll interval until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("meter client started",
		zap.Int32("customer_id", w.cfg.CustomerID),
		zap.Int("batch_size", w.cfg.BatchSize),
		zap.Duration("poll_interval", w.cfg.PollInterval),
	)
	for {
		if ctx.Err() != nil {
			return nil
		}
		w.RunOnce(ctx)
		if !wait(ctx, w.cfg.PollInterval) {
			w.logger.Info("meter client stopped")
			return nil
		}
	}
}

func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// RunOnce performs a single collect, authenticate and submit cycle.
// Failures are logged and reported through the returned Outcome.
func (w *Worker) RunOnce(ctx context.Context) Outcome {
	w.cycles++
	out := w.cycle(ctx)
	cyclesTotal.WithLabelValues(string(out)).Inc()
	return out
}

func (w *Worker) cycle(ctx context.Context) Outcome {
	batch, err := w.collect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return OutcomeCancelled
		}
		w.logger.Error("collect readings failed", zap.Error(err))
		return OutcomeCollectError
	}

	tok, out, ok := w.ensureToken(ctx)
	if !ok {
		return out
	}

	callCtx, cancel := w.callContext(ctx, tok)
	defer cancel()

	var trailer metadata.MD
	resp, err := w.client.AddReading(callCtx, pbconv.ToPackage(batch), grpc.Trailer(&trailer))
	if err != nil {
		if ctx.Err() != nil {
			return OutcomeCancelled
		}
		return w.transportFailure("AddReading", err, trailer)
	}

	st := pbconv.FromStatus(resp.GetStatus())
	out = OutcomeSubmitted
	if st == domain.StatusSuccess {
		w.logger.Info("readings submitted", zap.Int("count", len(batch.Readings)))
	} else {
		out = OutcomeDeclined
		w.logger.Warn("readings not stored", zap.Stringer("status", st), zap.Int("count", len(batch.Readings)))
	}

	if w.cfg.DiagnosticsEvery > 0 && w.cycles%w.cfg.DiagnosticsEvery == 0 {
		w.sendDiagnostics(ctx, tok)
	}
	return out
}

func (w *Worker) collect(ctx context.Context) (domain.Batch, error) {
	readings := make([]domain.Reading, 0, w.cfg.BatchSize)
	for i := 0; i < w.cfg.BatchSize; i++ {
		r, err := w.source.Generate(ctx, w.cfg.CustomerID)
		if err != nil {
			return domain.Batch{}, fmt.Errorf("reading %d: %w", i, err)
		}
		readings = append(readings, r)
	}
	return domain.Batch{
		Readings: readings,
		Status:   domain.StatusSuccess,
		Notes:    w.cfg.Notes,
	}, nil
}

func (w *Worker) ensureToken(ctx context.Context) (domain.Token, Outcome, bool) {
	if w.tokens.NeedsLogin() {
		authCtx, cancel := context.WithTimeout(ctx, w.cfg.RequestTimeout)
		ok, err := w.tokens.Authenticate(authCtx, w.cfg.Credential)
		cancel()
		switch {
		case err != nil && ctx.Err() != nil:
			return domain.Token{}, OutcomeCancelled, false
		case errors.Is(err, ErrMalformedTokenResponse):
			w.logger.Error("token response was malformed")
			return domain.Token{}, OutcomeAuthFailed, false
		case err != nil:
			return domain.Token{}, w.transportFailure("CreateToken", err, nil), false
		case !ok:
			w.logger.Warn("authentication failed", zap.String("username", w.cfg.Credential.Username))
			return domain.Token{}, OutcomeAuthFailed, false
		}
		w.logger.Info("authenticated", zap.String("username", w.cfg.Credential.Username))
	}

	tok, ok := w.tokens.Token()
	if !ok {
		w.logger.Warn("granted token is already expired",
			zap.String("username", w.cfg.Credential.Username),
			zap.Time("expires_at", w.tokens.ExpiresAt()),
		)
		return domain.Token{}, OutcomeAuthFailed, false
	}
	return tok, "", true
}

func (w *Worker) callContext(ctx context.Context, tok domain.Token) (context.Context, context.CancelFunc) {
	callCtx, cancel := context.WithTimeout(ctx, w.cfg.RequestTimeout)
	return metadata.AppendToOutgoingContext(callCtx, "authorization", "Bearer "+tok.Value), cancel
}

func (w *Worker) transportFailure(op string, err error, trailer metadata.MD) Outcome {
	st := status.Convert(err)
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("code", st.Code().String()),
		zap.String("message", st.Message()),
	}

	switch st.Code() {
	case codes.OutOfRange:
		for _, k := range []string{pbconv.TrailerBadValue, pbconv.TrailerField, pbconv.TrailerMessage} {
			if v := trailer.Get(k); len(v) > 0 {
				fields = append(fields, zap.String(k, v[0]))
			}
		}
		for _, d := range st.Details() {
			if br, ok := d.(*errdetails.BadRequest); ok {
				for _, fv := range br.GetFieldViolations() {
					fields = append(fields, zap.String("violation", fv.GetField()+": "+fv.GetDescription()))
				}
			}
		}
		w.logger.Warn("readings rejected by server", fields...)
		return OutcomeRejected
	case codes.Unauthenticated:
		w.tokens.Invalidate()
		w.logger.Warn("call was not authenticated", fields...)
		return OutcomeUnauthenticated
	case codes.Unavailable, codes.DeadlineExceeded:
		w.logger.Warn("meter service unreachable", fields...)
		return OutcomeTransportError
	default:
		if v := trailer.Get(pbconv.TrailerException); len(v) > 0 {
			fields = append(fields, zap.String(pbconv.TrailerException, v[0]))
		}
		w.logger.Error("rpc failed", fields...)
		return OutcomeTransportError
	}
}

func (w *Worker) sendDiagnostics(ctx context.Context, tok domain.Token) {
	callCtx, cancel := w.callContext(ctx, tok)
	defer cancel()

	err := w.streamDiagnostics(callCtx)
	diagnosticsTotal.WithLabelValues(status.Code(err).String()).Inc()
	if err != nil {
		if ctx.Err() == nil {
			w.transportFailure("SendDiagnostics", err, nil)
		}
		return
	}
	w.logger.Debug("diagnostics sent", zap.Int("count", w.cfg.BatchSize))
}

func (w *Worker) streamDiagnostics(ctx context.Context) error {
	stream, err := w.client.SendDiagnostics(ctx)
	if err != nil {
		return err
	}
	for i := 0; i < w.cfg.BatchSize; i++ {
		r, err := w.source.Generate(ctx, w.cfg.CustomerID)
		if err != nil {
			_ = stream.CloseSend()
			return err
		}
		if err := stream.Send(pbconv.ToReading(r)); err != nil {
			if errors.Is(err, io.EOF) {
				// The real error is only available from CloseAndRecv.
				break
			}
			return err
		}
	}
	_, err = stream.CloseAndRecv()
	return err
}
