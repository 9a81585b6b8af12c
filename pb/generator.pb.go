// Package pb holds the wire messages and service description of the remote
// generator service.  See generator.proto.
package pb

import (
	context "context"

	proto "github.com/golang/protobuf/proto"
	grpc "google.golang.org/grpc"
)

// This is a compile-time assertion to ensure that this file is compatible
// with the proto package it is being compiled against.
const _ = proto.ProtoPackageIsVersion3

type OpenRequest struct {
	Algorithm string   `protobuf:"bytes,1,opt,name=algorithm,proto3" json:"algorithm,omitempty"`
	State     uint64   `protobuf:"varint,2,opt,name=state,proto3" json:"state,omitempty"`
	Stream    uint64   `protobuf:"varint,3,opt,name=stream,proto3" json:"stream,omitempty"`
	Words     []uint32 `protobuf:"varint,4,rep,packed,name=words,proto3" json:"words,omitempty"`
}

func (m *OpenRequest) Reset()         { *m = OpenRequest{} }
func (m *OpenRequest) String() string { return proto.CompactTextString(m) }
func (*OpenRequest) ProtoMessage()    {}

func (m *OpenRequest) GetAlgorithm() string {
	if m != nil {
		return m.Algorithm
	}
	return ""
}

func (m *OpenRequest) GetState() uint64 {
	if m != nil {
		return m.State
	}
	return 0
}

func (m *OpenRequest) GetStream() uint64 {
	if m != nil {
		return m.Stream
	}
	return 0
}

func (m *OpenRequest) GetWords() []uint32 {
	if m != nil {
		return m.Words
	}
	return nil
}

type Session struct {
	Id        string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Algorithm string `protobuf:"bytes,2,opt,name=algorithm,proto3" json:"algorithm,omitempty"`
}

func (m *Session) Reset()         { *m = Session{} }
func (m *Session) String() string { return proto.CompactTextString(m) }
func (*Session) ProtoMessage()    {}

func (m *Session) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Session) GetAlgorithm() string {
	if m != nil {
		return m.Algorithm
	}
	return ""
}

type DrawRequest struct {
	Session string  `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
	Op      string  `protobuf:"bytes,2,opt,name=op,proto3" json:"op,omitempty"`
	Min     float64 `protobuf:"fixed64,3,opt,name=min,proto3" json:"min,omitempty"`
	Max     float64 `protobuf:"fixed64,4,opt,name=max,proto3" json:"max,omitempty"`
	Count   uint32  `protobuf:"varint,5,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *DrawRequest) Reset()         { *m = DrawRequest{} }
func (m *DrawRequest) String() string { return proto.CompactTextString(m) }
func (*DrawRequest) ProtoMessage()    {}

func (m *DrawRequest) GetSession() string {
	if m != nil {
		return m.Session
	}
	return ""
}

func (m *DrawRequest) GetOp() string {
	if m != nil {
		return m.Op
	}
	return ""
}

func (m *DrawRequest) GetMin() float64 {
	if m != nil {
		return m.Min
	}
	return 0
}

func (m *DrawRequest) GetMax() float64 {
	if m != nil {
		return m.Max
	}
	return 0
}

func (m *DrawRequest) GetCount() uint32 {
	if m != nil {
		return m.Count
	}
	return 0
}

type DrawReply struct {
	Values []float64 `protobuf:"fixed64,1,rep,packed,name=values,proto3" json:"values,omitempty"`
}

func (m *DrawReply) Reset()         { *m = DrawReply{} }
func (m *DrawReply) String() string { return proto.CompactTextString(m) }
func (*DrawReply) ProtoMessage()    {}

func (m *DrawReply) GetValues() []float64 {
	if m != nil {
		return m.Values
	}
	return nil
}

type Ack struct {
	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (m *Ack) Reset()         { *m = Ack{} }
func (m *Ack) String() string { return proto.CompactTextString(m) }
func (*Ack) ProtoMessage()    {}

func (m *Ack) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

func init() {
	proto.RegisterType((*OpenRequest)(nil), "prng.OpenRequest")
	proto.RegisterType((*Session)(nil), "prng.Session")
	proto.RegisterType((*DrawRequest)(nil), "prng.DrawRequest")
	proto.RegisterType((*DrawReply)(nil), "prng.DrawReply")
	proto.RegisterType((*Ack)(nil), "prng.Ack")
}

// GeneratorClient is the client API for the Generator service.
type GeneratorClient interface {
	Open(ctx context.Context, in *OpenRequest, opts ...grpc.CallOption) (*Session, error)
	Draw(ctx context.Context, in *DrawRequest, opts ...grpc.CallOption) (*DrawReply, error)
	Close(ctx context.Context, in *Session, opts ...grpc.CallOption) (*Ack, error)
}

type generatorClient struct {
	cc *grpc.ClientConn
}

func NewGeneratorClient(cc *grpc.ClientConn) GeneratorClient {
	return &generatorClient{cc}
}

func (c *generatorClient) Open(ctx context.Context, in *OpenRequest, opts ...grpc.CallOption) (*Session, error) {
	out := new(Session)
	err := c.cc.Invoke(ctx, "/prng.Generator/Open", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *generatorClient) Draw(ctx context.Context, in *DrawRequest, opts ...grpc.CallOption) (*DrawReply, error) {
	out := new(DrawReply)
	err := c.cc.Invoke(ctx, "/prng.Generator/Draw", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *generatorClient) Close(ctx context.Context, in *Session, opts ...grpc.CallOption) (*Ack, error) {
	out := new(Ack)
	err := c.cc.Invoke(ctx, "/prng.Generator/Close", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GeneratorServer is the server API for the Generator service.
type GeneratorServer interface {
	Open(context.Context, *OpenRequest) (*Session, error)
	Draw(context.Context, *DrawRequest) (*DrawReply, error)
	Close(context.Context, *Session) (*Ack, error)
}

func RegisterGeneratorServer(s *grpc.Server, srv GeneratorServer) {
	s.RegisterService(&_Generator_serviceDesc, srv)
}

func _Generator_Open_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OpenRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GeneratorServer).Open(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/prng.Generator/Open",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GeneratorServer).Open(ctx, req.(*OpenRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Generator_Draw_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GeneratorServer).Draw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/prng.Generator/Draw",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GeneratorServer).Draw(ctx, req.(*DrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Generator_Close_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Session)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GeneratorServer).Close(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/prng.Generator/Close",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GeneratorServer).Close(ctx, req.(*Session))
	}
	return interceptor(ctx, in, info, handler)
}

var _Generator_serviceDesc = grpc.ServiceDesc{
	ServiceName: "prng.Generator",
	HandlerType: (*GeneratorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Open",
			Handler:    _Generator_Open_Handler,
		},
		{
			MethodName: "Draw",
			Handler:    _Generator_Draw_Handler,
		},
		{
			MethodName: "Close",
			Handler:    _Generator_Close_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "generator.proto",
}
