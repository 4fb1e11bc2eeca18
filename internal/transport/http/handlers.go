package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	meterreaderv1 "github.com/milad/meterreader/gen/go/proto/meterreader/v1"
	"github.com/milad/meterreader/internal/domain"
	"github.com/milad/meterreader/internal/logging"
	"github.com/milad/meterreader/internal/transport/pbconv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	upstreamTimeout = 5 * time.Second
	maxBodyBytes    = 1 << 20
)

type Server struct {
	client MeterReadingClient
	logger *zap.Logger
	mux    *http.ServeMux
}

func New(client MeterReadingClient, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		client: client,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := uuid.NewString()
	logger := logging.WithRequestID(s.logger, reqID)

	w.Header().Set("X-Request-Id", reqID)
	rr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	defer func() {
		if rec := recover(); rec != nil {
			rr.status = http.StatusInternalServerError

			// Best-effort response. If headers/body were already written, we can
			// only log.
			if !rr.wroteHeader {
				if strings.HasPrefix(r.URL.Path, "/api") {
					writeAPIError(rr, http.StatusInternalServerError, "internal_error", "internal error")
				} else {
					http.Error(rr, "internal error", http.StatusInternalServerError)
				}
			}

			logger.Error("panic handling request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Any("panic", rec),
				zap.ByteString("stack", debug.Stack()),
			)
		}

		dur := time.Since(start)
		observeHTTPRequest(r, rr.status, dur)

		// Keep health checks + metrics endpoint quiet.
		if r.URL.Path != "/healthz" && r.URL.Path != "/metrics" {
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rr.status),
				zap.Duration("duration", dur.Truncate(time.Millisecond)),
			)
		}
	}()

	s.mux.ServeHTTP(rr, r)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/token", s.handleCreateToken)
	s.mux.HandleFunc("/api/readings", s.handleAddReadings)
	s.mux.HandleFunc("/healthz", s.handleHealthz)
	s.mux.Handle("/metrics", promhttp.Handler())
	s.mux.HandleFunc("/", s.handleIndex)
}

// handleCreateToken exchanges JSON credentials for a bearer token.
func (s *Server) handleCreateToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	var body tokenRequestJSON
	if err := decodeJSON(w, r, &body); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_argument", err.Error())
		return
	}
	if body.Username == "" || body.Password == "" {
		writeAPIError(w, http.StatusBadRequest, "invalid_argument", "username and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), upstreamTimeout)
	defer cancel()
	grpcStart := time.Now()
	resp, err := s.client.CreateToken(ctx, &meterreaderv1.TokenRequest{
		Username: body.Username,
		Password: body.Password,
	})
	grpcDur := time.Since(grpcStart)
	if err != nil {
		s.writeUpstreamError(w, "CreateToken", err, nil, grpcDur)
		return
	}
	observeUpstreamGRPC("CreateToken", codes.OK.String(), grpcDur)

	if !resp.GetSuccess() {
		writeAPIError(w, http.StatusUnauthorized, "invalid_credentials", "invalid username or password")
		return
	}
	exp := resp.GetExpiration()
	if exp == nil || exp.CheckValid() != nil {
		writeAPIError(w, http.StatusBadGateway, "upstream_error", "upstream returned invalid expiration")
		return
	}
	_ = writeJSON(w, http.StatusOK, tokenResponseJSON{
		Token:      resp.GetToken(),
		Expiration: formatTime(exp.AsTime()),
	})
}

// handleAddReadings forwards a JSON batch to AddReading with the caller's bearer token.
// Readings must carry RFC3339 times; status defaults to "success".
func (s *Server) handleAddReadings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}

	authz := r.Header.Get("Authorization")
	if scheme, tok, ok := strings.Cut(authz, " "); !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tok) == "" {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeAPIError(w, http.StatusUnauthorized, "unauthenticated", "bearer token required")
		return
	}

	var body addReadingsRequestJSON
	if err := decodeJSON(w, r, &body); err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_argument", err.Error())
		return
	}
	batch, err := toBatch(body)
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "invalid_argument", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), upstreamTimeout)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", authz)

	var trailer metadata.MD
	grpcStart := time.Now()
	resp, err := s.client.AddReading(ctx, pbconv.ToPackage(batch), grpc.Trailer(&trailer))
	grpcDur := time.Since(grpcStart)
	if err != nil {
		s.writeUpstreamError(w, "AddReading", err, trailer, grpcDur)
		return
	}
	observeUpstreamGRPC("AddReading", codes.OK.String(), grpcDur)

	_ = writeJSON(w, http.StatusOK, addReadingsResponseJSON{
		Status: pbconv.FromStatus(resp.GetStatus()).String(),
	})
}

func toBatch(body addReadingsRequestJSON) (domain.Batch, error) {
	b := domain.Batch{Notes: body.Notes, Readings: make([]domain.Reading, 0, len(body.Readings))}
	switch strings.ToLower(body.Status) {
	case "", "success":
		b.Status = domain.StatusSuccess
	case "failure":
		b.Status = domain.StatusFailure
	default:
		return domain.Batch{}, errors.New("status must be success or failure")
	}
	if len(body.Readings) == 0 {
		return domain.Batch{}, errors.New("readings are required")
	}
	for _, rj := range body.Readings {
		t, err := parseRFC3339(rj.Time)
		if err != nil {
			return domain.Batch{}, errors.New("invalid reading time")
		}
		b.Readings = append(b.Readings, domain.Reading{CustomerID: rj.CustomerID, Value: rj.Value, Time: t})
	}
	return b, nil
}

func (s *Server) writeUpstreamError(w http.ResponseWriter, method string, err error, trailer metadata.MD, dur time.Duration) {
	st, ok := status.FromError(err)
	if !ok {
		observeUpstreamGRPC(method, codes.Unknown.String(), dur)
		writeAPIError(w, http.StatusBadGateway, "upstream_error", "upstream error")
		return
	}
	observeUpstreamGRPC(method, st.Code().String(), dur)

	switch st.Code() {
	case codes.InvalidArgument:
		writeAPIError(w, http.StatusBadRequest, "invalid_argument", st.Message())
	case codes.Unauthenticated:
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeAPIError(w, http.StatusUnauthorized, "unauthenticated", st.Message())
	case codes.OutOfRange:
		details := map[string]string{}
		for _, k := range []string{pbconv.TrailerBadValue, pbconv.TrailerField, pbconv.TrailerMessage} {
			if v := trailer.Get(k); len(v) > 0 {
				details[k] = v[0]
			}
		}
		writeAPIErrorDetails(w, http.StatusUnprocessableEntity, "value_too_low", st.Message(), details)
	case codes.DeadlineExceeded:
		writeAPIError(w, http.StatusGatewayTimeout, "upstream_timeout", "upstream timeout")
	default:
		s.logger.Warn("upstream call failed",
			zap.String("method", method),
			zap.String("code", st.Code().String()),
			zap.String("message", st.Message()),
		)
		writeAPIError(w, http.StatusBadGateway, "upstream_error", "upstream error")
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		// Keep API errors JSON.
		if strings.HasPrefix(r.URL.Path, "/api") {
			writeAPIError(w, http.StatusNotFound, "not_found", "not found")
			return
		}
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(p)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid JSON body")
	}
	return nil
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeAPIErrorDetails(w, status, code, message, nil)
}

func writeAPIErrorDetails(w http.ResponseWriter, status int, code, message string, details map[string]string) {
	reqID := w.Header().Get("X-Request-Id")
	if len(details) == 0 {
		details = nil
	}
	_ = writeJSON(w, status, apiErrorJSON{
		Code:      code,
		Message:   message,
		RequestID: reqID,
		Details:   details,
	})
}
