// Package rpc serves position analysis over gRPC.
package rpc

import (
	"log"
	"sync"
	"time"

	"golang.org/x/net/context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nelhage/mnk/ai"
	"github.com/nelhage/mnk/mnk"
	"github.com/nelhage/mnk/notation"
	"github.com/nelhage/mnk/pb"
)

// maxLimit caps the per-request search budget.
const maxLimit = time.Minute

type cache struct {
	sync.Mutex
	engine *ai.Selector
	cfg    ai.Config
	size   int
	k      int
}

func (c *cache) getEngine(size, k int, cfg ai.Config) *ai.Selector {
	if c.engine == nil || c.size != size || c.k != k || c.cfg != cfg {
		c.engine = ai.NewSelector(cfg)
		c.cfg = cfg
		c.size, c.k = size, k
	}
	return c.engine
}

type Server struct {
	Debug int

	analyzeCache cache
}

func NewServer() *Server {
	return &Server{}
}

// Register attaches the service to a gRPC server.
func (s *Server) Register(g *grpc.Server) {
	pb.RegisterMnkServer(g, s)
}

func (s *Server) Analyze(ctx context.Context, req *pb.AnalyzeRequest) (*pb.AnalyzeResponse, error) {
	b, err := notation.ParseBoard(req.Position)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if b.Outcome().Over() {
		return nil, status.Error(codes.FailedPrecondition, "game is over")
	}
	if req.Depth < 0 || req.LimitMs < 0 {
		return nil, status.Error(codes.InvalidArgument, "negative depth or limit")
	}
	limit := time.Duration(req.LimitMs) * time.Millisecond
	if limit > maxLimit {
		limit = maxLimit
	}
	cfg := ai.Config{
		Depth: int(req.Depth),
		Limit: limit,
		Debug: s.Debug,
		Side:  b.ToMove(),
	}

	s.analyzeCache.Lock()
	defer s.analyzeCache.Unlock()
	engine := s.analyzeCache.getEngine(b.Size(), b.K(), cfg)

	m, err := engine.SelectMove(ctx, b)
	if err == ai.ErrNoLegalMove {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	if err != nil {
		return nil, err
	}

	resp := &pb.AnalyzeResponse{
		Move:   notation.FormatMove(m),
		Value:  engine.Value(),
		Reason: engine.Reason().String(),
	}
	resp.Depth = int32(ai.CompletedDepth(engine.Stats()))
	for _, st := range engine.Stats() {
		resp.Nodes += st.Visited
	}
	if s.Debug > 0 {
		log.Printf("[serve] analyze %s -> %s (%s)", req.Position, resp.Move, resp.Reason)
	}
	return resp, nil
}

// Client wraps a connection to a running server as an ai.Player.
type Client struct {
	client pb.MnkClient
	limit  time.Duration
	depth  int
}

func NewClient(cc *grpc.ClientConn, limit time.Duration, depth int) *Client {
	return &Client{client: pb.NewMnkClient(cc), limit: limit, depth: depth}
}

func (c *Client) GetMove(ctx context.Context, b *mnk.Board) (mnk.Move, error) {
	resp, err := c.client.Analyze(ctx, &pb.AnalyzeRequest{
		Position: notation.FormatBoard(b),
		LimitMs:  int64(c.limit / time.Millisecond),
		Depth:    int32(c.depth),
	})
	if err != nil {
		return mnk.NoMove, err
	}
	return notation.ParseMove(resp.Move)
}
