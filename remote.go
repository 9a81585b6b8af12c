package prng

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/BTBurke/prng/pb"
	"github.com/BTBurke/prng/pkg/rng"
	"github.com/cenkalti/backoff"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
)

// ErrSession is returned when the remote service does not know the session,
// usually because it was restarted
type ErrSession struct {
	Msg string
}

func (e ErrSession) Error() string {
	return e.Msg
}

// Remote draws from a generator session held by a remote prng service
type Remote struct {
	conn    *grpc.ClientConn
	client  pb.GeneratorClient
	session *pb.Session
	policy  func() backoff.BackOff
}

// remotePolicy is the retry schedule for calls to an unavailable service
var remotePolicy = defaultPolicy

func defaultPolicy() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 30 * time.Second
	return b
}

func dialRemote(ctx context.Context, cfg Config) (*Remote, error) {
	var opts []grpc.DialOption
	if cfg.useTLS {
		opts = append(opts, grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{})))
	} else {
		opts = append(opts, grpc.WithInsecure())
	}
	conn, err := grpc.DialContext(ctx, cfg.Host, opts...)
	if err != nil {
		return nil, err
	}
	r := &Remote{
		conn:   conn,
		client: pb.NewGeneratorClient(conn),
		policy: remotePolicy,
	}
	if err := r.open(ctx, cfg); err != nil {
		conn.Close()
		return nil, err
	}
	return r, nil
}

func (r *Remote) open(ctx context.Context, cfg Config) error {
	req := &pb.OpenRequest{
		Algorithm: string(cfg.Algorithm),
		State:     cfg.Seed,
		Stream:    cfg.Stream,
		Words:     cfg.SeedWords,
	}
	return r.retry(ctx, func() error {
		session, err := r.client.Open(ctx, req)
		if err != nil {
			return err
		}
		r.session = session
		return nil
	})
}

func (r *Remote) draw(ctx context.Context, op rng.Op, min, max float64, count int) ([]float64, error) {
	if count > MaxDrawCount {
		return nil, fmt.Errorf("count must be between 1 and %d", MaxDrawCount)
	}
	req := &pb.DrawRequest{
		Session: r.session.GetId(),
		Op:      string(op),
		Min:     min,
		Max:     max,
		Count:   uint32(count),
	}
	// Draw advances the session, so a failed call is never repeated
	reply, err := r.client.Draw(ctx, req)
	if err != nil {
		return nil, fromStatus(err)
	}
	return reply.GetValues(), nil
}

func (r *Remote) close(ctx context.Context) error {
	defer r.conn.Close()
	if r.session == nil {
		return nil
	}
	ack, err := r.client.Close(ctx, r.session)
	if err != nil {
		return fromStatus(err)
	}
	if !ack.GetSuccess() {
		return fmt.Errorf("session %s was not closed", r.session.GetId())
	}
	return nil
}

// retry repeats op with exponential backoff while the service is unavailable.
// Any other failure is returned immediately.  Only calls that leave existing
// sessions untouched may be retried.
func (r *Remote) retry(ctx context.Context, op func() error) error {
	err := backoff.Retry(func() error {
		err := op()
		switch status.Code(err) {
		case codes.OK:
			return nil
		case codes.Unavailable:
			return err
		default:
			return backoff.Permanent(err)
		}
	}, backoff.WithContext(r.policy(), ctx))
	return fromStatus(err)
}

// fromStatus restores the caller errors carried in a gRPC status
func fromStatus(err error) error {
	if err == nil {
		return nil
	}
	s, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch s.Code() {
	case codes.OutOfRange:
		return rng.RangeError{Msg: s.Message()}
	case codes.NotFound:
		return ErrSession{Msg: s.Message()}
	default:
		return err
	}
}
