package worker

import (
	"context"
	"io"
	"sync"

	meterreaderv1 "github.com/milad/meterreader/gen/go/proto/meterreader/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// fakeClient records calls and answers them from the configured functions.
type fakeClient struct {
	mu sync.Mutex

	createToken func(*meterreaderv1.TokenRequest) (*meterreaderv1.TokenResponse, error)
	addReading  func(*meterreaderv1.ReadingPackage) (*meterreaderv1.StatusMessage, metadata.MD, error)
	closeErr    error

	tokenCalls   int
	packages     []*meterreaderv1.ReadingPackage
	authHeaders  []string
	diagnostics  [][]*meterreaderv1.ReadingMessage
	onAddReading func()

	// When set, the call signals entered and blocks until ctx is done.
	blockCreateToken bool
	blockAddReading  bool
	entered          chan struct{}
}

func (f *fakeClient) block(ctx context.Context) error {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	<-ctx.Done()
	return status.FromContextError(ctx.Err()).Err()
}

func (f *fakeClient) CreateToken(ctx context.Context, in *meterreaderv1.TokenRequest, _ ...grpc.CallOption) (*meterreaderv1.TokenResponse, error) {
	f.mu.Lock()
	f.tokenCalls++
	blocking := f.blockCreateToken
	f.mu.Unlock()
	if blocking {
		return nil, f.block(ctx)
	}
	return f.createToken(in)
}

func (f *fakeClient) AddReading(ctx context.Context, in *meterreaderv1.ReadingPackage, opts ...grpc.CallOption) (*meterreaderv1.StatusMessage, error) {
	f.mu.Lock()
	f.packages = append(f.packages, in)
	md, _ := metadata.FromOutgoingContext(ctx)
	f.authHeaders = append(f.authHeaders, md.Get("authorization")...)
	hook := f.onAddReading
	blocking := f.blockAddReading
	f.mu.Unlock()
	if hook != nil {
		hook()
	}
	if blocking {
		return nil, f.block(ctx)
	}

	if f.addReading == nil {
		return &meterreaderv1.StatusMessage{Status: meterreaderv1.ReadingStatus_READING_STATUS_SUCCESS}, nil
	}
	resp, trailer, err := f.addReading(in)
	for _, o := range opts {
		if tr, ok := o.(grpc.TrailerCallOption); ok && trailer != nil {
			*tr.TrailerAddr = trailer
		}
	}
	return resp, err
}

func (f *fakeClient) SendDiagnostics(context.Context, ...grpc.CallOption) (grpc.ClientStreamingClient[meterreaderv1.ReadingMessage, emptypb.Empty], error) {
	return &fakeStream{client: f}, nil
}

type fakeStream struct {
	grpc.ClientStream
	client *fakeClient
	sent   []*meterreaderv1.ReadingMessage
	closed bool
}

func (s *fakeStream) Send(m *meterreaderv1.ReadingMessage) error {
	if s.closed {
		return io.EOF
	}
	s.sent = append(s.sent, m)
	return nil
}

func (s *fakeStream) CloseSend() error {
	s.closed = true
	return nil
}

func (s *fakeStream) CloseAndRecv() (*emptypb.Empty, error) {
	s.closed = true
	s.client.mu.Lock()
	defer s.client.mu.Unlock()
	if s.client.closeErr != nil {
		return nil, s.client.closeErr
	}
	s.client.diagnostics = append(s.client.diagnostics, s.sent)
	return &emptypb.Empty{}, nil
}
