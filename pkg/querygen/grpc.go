package querygen

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/brandlens/brandlens/pkg/models"
	querygenv1 "github.com/brandlens/brandlens/proto"
)

// GRPCGenerator calls an external query-generation service (LLM-backed)
// over gRPC.
type GRPCGenerator struct {
	conn    *grpc.ClientConn
	client  querygenv1.QueryGenServiceClient
	timeout time.Duration
}

// NewGRPCGenerator connects to the generation service at addr.
func NewGRPCGenerator(addr string, timeout time.Duration) (*GRPCGenerator, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to querygen service at %s: %w", addr, err)
	}
	return &GRPCGenerator{
		conn:    conn,
		client:  querygenv1.NewQueryGenServiceClient(conn),
		timeout: timeout,
	}, nil
}

// Generate requests queries from the remote service and maps them onto the
// domain types. Unknown categories or types from the service are dropped
// rather than propagated.
func (g *GRPCGenerator) Generate(ctx context.Context, req Request) ([]models.GeneratedQuery, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.GenerateQueries(ctx, toProtoRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gRPC GenerateQueries call failed: %w", err)
	}

	out := make([]models.GeneratedQuery, 0, len(resp.Queries))
	for _, q := range resp.Queries {
		mapped, ok := fromProtoQuery(q)
		if !ok {
			continue
		}
		out = append(out, mapped)
	}
	return out, nil
}

// Close releases the gRPC connection.
func (g *GRPCGenerator) Close() error {
	return g.conn.Close()
}

func toProtoRequest(req Request) *querygenv1.GenerateQueriesRequest {
	return &querygenv1.GenerateQueriesRequest{
		CompanyName:        req.Profile.Name,
		Domain:             req.Profile.Domain,
		Industry:           req.Profile.Industry,
		Competitors:        req.Profile.Competitors,
		Aliases:            req.Profile.Aliases,
		QueriesPerCategory: int32(req.QueriesPerCategory),
	}
}

func fromProtoQuery(q *querygenv1.GeneratedQuery) (models.GeneratedQuery, bool) {
	cat := models.Category(q.Category)
	valid := false
	for _, known := range models.Categories() {
		if cat == known {
			valid = true
			break
		}
	}
	if !valid || q.Query == "" {
		return models.GeneratedQuery{}, false
	}

	typ := models.QueryType(q.Type)
	switch typ {
	case models.QueryTypeInformational, models.QueryTypeCommercial,
		models.QueryTypeTransactional, models.QueryTypeNavigational:
	default:
		typ = models.QueryTypeInformational
	}

	priority := models.Priority(q.Priority)
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
	default:
		priority = models.PriorityMedium
	}

	return models.GeneratedQuery{
		Query:               q.Query,
		Category:            cat,
		Type:                typ,
		Intent:              q.Intent,
		Difficulty:          int(q.Difficulty),
		Priority:            priority,
		MonthlySearchVolume: int(q.MonthlySearchVolume),
		AIRelevance:         int(q.AiRelevance),
	}, true
}
