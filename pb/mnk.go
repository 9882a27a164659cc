// Package pb holds the messages and service bindings described by
// mnk.proto.
package pb

import (
	"github.com/golang/protobuf/proto"
	"golang.org/x/net/context"
	"google.golang.org/grpc"
)

type AnalyzeRequest struct {
	Position             string   `protobuf:"bytes,1,opt,name=position,proto3" json:"position,omitempty"`
	LimitMs              int64    `protobuf:"varint,2,opt,name=limit_ms,json=limitMs,proto3" json:"limit_ms,omitempty"`
	Depth                int32    `protobuf:"varint,3,opt,name=depth,proto3" json:"depth,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *AnalyzeRequest) Reset()         { *m = AnalyzeRequest{} }
func (m *AnalyzeRequest) String() string { return proto.CompactTextString(m) }
func (*AnalyzeRequest) ProtoMessage()    {}

func (m *AnalyzeRequest) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_AnalyzeRequest.Unmarshal(m, b)
}
func (m *AnalyzeRequest) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_AnalyzeRequest.Marshal(b, m, deterministic)
}
func (m *AnalyzeRequest) XXX_Merge(src proto.Message) {
	xxx_messageInfo_AnalyzeRequest.Merge(m, src)
}
func (m *AnalyzeRequest) XXX_Size() int {
	return xxx_messageInfo_AnalyzeRequest.Size(m)
}
func (m *AnalyzeRequest) XXX_DiscardUnknown() {
	xxx_messageInfo_AnalyzeRequest.DiscardUnknown(m)
}

var xxx_messageInfo_AnalyzeRequest proto.InternalMessageInfo

func (m *AnalyzeRequest) GetPosition() string {
	if m != nil {
		return m.Position
	}
	return ""
}

func (m *AnalyzeRequest) GetLimitMs() int64 {
	if m != nil {
		return m.LimitMs
	}
	return 0
}

func (m *AnalyzeRequest) GetDepth() int32 {
	if m != nil {
		return m.Depth
	}
	return 0
}

type AnalyzeResponse struct {
	Move                 string   `protobuf:"bytes,1,opt,name=move,proto3" json:"move,omitempty"`
	Value                int64    `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
	Depth                int32    `protobuf:"varint,3,opt,name=depth,proto3" json:"depth,omitempty"`
	Nodes                uint64   `protobuf:"varint,4,opt,name=nodes,proto3" json:"nodes,omitempty"`
	Reason               string   `protobuf:"bytes,5,opt,name=reason,proto3" json:"reason,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *AnalyzeResponse) Reset()         { *m = AnalyzeResponse{} }
func (m *AnalyzeResponse) String() string { return proto.CompactTextString(m) }
func (*AnalyzeResponse) ProtoMessage()    {}

func (m *AnalyzeResponse) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_AnalyzeResponse.Unmarshal(m, b)
}
func (m *AnalyzeResponse) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_AnalyzeResponse.Marshal(b, m, deterministic)
}
func (m *AnalyzeResponse) XXX_Merge(src proto.Message) {
	xxx_messageInfo_AnalyzeResponse.Merge(m, src)
}
func (m *AnalyzeResponse) XXX_Size() int {
	return xxx_messageInfo_AnalyzeResponse.Size(m)
}
func (m *AnalyzeResponse) XXX_DiscardUnknown() {
	xxx_messageInfo_AnalyzeResponse.DiscardUnknown(m)
}

var xxx_messageInfo_AnalyzeResponse proto.InternalMessageInfo

func (m *AnalyzeResponse) GetMove() string {
	if m != nil {
		return m.Move
	}
	return ""
}

func (m *AnalyzeResponse) GetValue() int64 {
	if m != nil {
		return m.Value
	}
	return 0
}

func (m *AnalyzeResponse) GetDepth() int32 {
	if m != nil {
		return m.Depth
	}
	return 0
}

func (m *AnalyzeResponse) GetNodes() uint64 {
	if m != nil {
		return m.Nodes
	}
	return 0
}

func (m *AnalyzeResponse) GetReason() string {
	if m != nil {
		return m.Reason
	}
	return ""
}

func init() {
	proto.RegisterType((*AnalyzeRequest)(nil), "mnk.AnalyzeRequest")
	proto.RegisterType((*AnalyzeResponse)(nil), "mnk.AnalyzeResponse")
}

// MnkClient is the client API for the Mnk service.
type MnkClient interface {
	Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error)
}

type mnkClient struct {
	cc *grpc.ClientConn
}

func NewMnkClient(cc *grpc.ClientConn) MnkClient {
	return &mnkClient{cc}
}

func (c *mnkClient) Analyze(ctx context.Context, in *AnalyzeRequest, opts ...grpc.CallOption) (*AnalyzeResponse, error) {
	out := new(AnalyzeResponse)
	err := c.cc.Invoke(ctx, "/mnk.Mnk/Analyze", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MnkServer is the server API for the Mnk service.
type MnkServer interface {
	Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error)
}

func RegisterMnkServer(s *grpc.Server, srv MnkServer) {
	s.RegisterService(&_Mnk_serviceDesc, srv)
}

func _Mnk_Analyze_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MnkServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mnk.Mnk/Analyze",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MnkServer).Analyze(ctx, req.(*AnalyzeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Mnk_serviceDesc = grpc.ServiceDesc{
	ServiceName: "mnk.Mnk",
	HandlerType: (*MnkServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Analyze",
			Handler:    _Mnk_Analyze_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mnk.proto",
}
