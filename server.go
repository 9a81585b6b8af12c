package prng

import (
	"context"
	"encoding/hex"
	"fmt"
	"math"
	"net"
	"sync"
	"time"

	"github.com/BTBurke/prng/pb"
	"github.com/BTBurke/prng/pkg/rng"
	"github.com/rs/zerolog"
	"golang.org/x/net/netutil"
	"golang.org/x/xerrors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
)

const sessionIDBytes = 16

// Server holds seeded generator sessions for remote callers.  Each session
// is drawn from by one request at a time.  At most Config.MaxSessions are
// open; when the table is full, sessions idle for longer than
// Config.SessionIdle are dropped to make room.
type Server struct {
	cfg  Config
	log  zerolog.Logger
	grpc *grpc.Server
	now  func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	mu sync.Mutex
	s  *rng.Sampler

	// used is guarded by Server.mu
	used time.Time
}

var _ pb.GeneratorServer = &Server{}

// NewServer prepares the gRPC service.  TLS is used when Config.TLSCert is set.
func NewServer(cfg Config, log zerolog.Logger, opts ...grpc.ServerOption) (*Server, error) {
	if cfg.TLSCert != "" {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			return nil, xerrors.Errorf("loading tls credentials: %w", err)
		}
		opts = append(opts, grpc.Creds(creds))
	}
	s := &Server{
		cfg:      cfg,
		log:      log,
		grpc:     grpc.NewServer(opts...),
		now:      time.Now,
		sessions: make(map[string]*session),
	}
	pb.RegisterGeneratorServer(s.grpc, s)
	return s, nil
}

// Serve listens on Config.Listen until ctx is done, then stops gracefully
func (s *Server) Serve(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return err
	}
	return s.serve(ctx, lis)
}

func (s *Server) serve(ctx context.Context, lis net.Listener) error {
	if s.cfg.MaxConns > 0 {
		lis = netutil.LimitListener(lis, s.cfg.MaxConns)
	}
	s.log.Info().Str("addr", lis.Addr().String()).Int("max_conns", s.cfg.MaxConns).Msg("serving")

	errc := make(chan error, 1)
	go func() {
		errc <- s.grpc.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.grpc.GracefulStop()
		<-errc
		s.log.Info().Msg("stopped")
		return nil
	case err := <-errc:
		return err
	}
}

// Open seeds a new generator and returns its session.  A zero state with no
// words seeds from entropy.
func (s *Server) Open(ctx context.Context, req *pb.OpenRequest) (*pb.Session, error) {
	a, err := rng.ParseAlgorithm(req.GetAlgorithm())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if len(req.GetWords()) > 0 && a != rng.TinyMT {
		return nil, status.Errorf(codes.InvalidArgument, "seed words are only supported by %s", rng.TinyMT)
	}
	if a == rng.TinyMT && req.GetState() > math.MaxUint32 {
		return nil, status.Errorf(codes.InvalidArgument, "seed for %s must fit in 32 bits", rng.TinyMT)
	}

	g, err := seedGenerator(a, req.GetState(), req.GetStream(), req.GetWords(), s.cfg.entropy)
	if err != nil {
		s.log.Error().Err(err).Msg("seeding generator")
		return nil, status.Error(codes.Internal, err.Error())
	}
	id, err := s.newID()
	if err != nil {
		s.log.Error().Err(err).Msg("creating session id")
		return nil, status.Error(codes.Internal, err.Error())
	}

	s.mu.Lock()
	if len(s.sessions) >= s.cfg.MaxSessions {
		if n := s.expireLocked(); n > 0 {
			s.log.Info().Int("expired", n).Msg("dropped idle sessions")
		}
	}
	if len(s.sessions) >= s.cfg.MaxSessions {
		s.mu.Unlock()
		s.log.Warn().Int("max_sessions", s.cfg.MaxSessions).Msg("session table full")
		return nil, status.Errorf(codes.ResourceExhausted, "session limit of %d reached", s.cfg.MaxSessions)
	}
	s.sessions[id] = &session{s: rng.NewSampler(g), used: s.now()}
	open := len(s.sessions)
	s.mu.Unlock()

	s.log.Debug().Str("session", id).Str("algorithm", string(a)).Int("open", open).Msg("opened session")
	return &pb.Session{Id: id, Algorithm: string(a)}, nil
}

// Draw performs count operations on the session's generator.  A count of 0
// draws one value.
func (s *Server) Draw(ctx context.Context, req *pb.DrawRequest) (*pb.DrawReply, error) {
	sess, ok := s.lookup(req.GetSession())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "unknown session: %s", req.GetSession())
	}
	op, err := rng.ParseOp(req.GetOp())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	count := int(req.GetCount())
	switch {
	case count == 0:
		count = 1
	case count > MaxDrawCount:
		return nil, status.Errorf(codes.InvalidArgument, "count must be at most %d", MaxDrawCount)
	}

	sess.mu.Lock()
	values, err := drawN(ctx, sess.s, op, req.GetMin(), req.GetMax(), count)
	sess.mu.Unlock()
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.DrawReply{Values: values}, nil
}

// Close forgets the session
func (s *Server) Close(ctx context.Context, req *pb.Session) (*pb.Ack, error) {
	s.mu.Lock()
	_, ok := s.sessions[req.GetId()]
	delete(s.sessions, req.GetId())
	s.mu.Unlock()
	if !ok {
		return nil, status.Errorf(codes.NotFound, "unknown session: %s", req.GetId())
	}
	s.log.Debug().Str("session", req.GetId()).Msg("closed session")
	return &pb.Ack{Success: true}, nil
}

// lookup returns the session and marks it used
func (s *Server) lookup(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if ok {
		sess.used = s.now()
	}
	return sess, ok
}

// expireLocked drops sessions idle for longer than Config.SessionIdle and
// returns how many were dropped.  s.mu must be held.
func (s *Server) expireLocked() int {
	if s.cfg.SessionIdle <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.cfg.SessionIdle)
	n := 0
	for id, sess := range s.sessions {
		if sess.used.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *Server) newID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if err := s.cfg.entropy.Fill(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func toStatus(err error) error {
	var rerr rng.RangeError
	switch {
	case xerrors.As(err, &rerr):
		return status.Error(codes.OutOfRange, rerr.Error())
	case xerrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case xerrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.InvalidArgument, fmt.Sprintf("draw failed: %s", err))
	}
}
