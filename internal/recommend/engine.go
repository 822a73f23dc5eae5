package recommend

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/app-recommender/internal/observability"
	"github.com/jonathan/app-recommender/internal/onboarding"
	"github.com/jonathan/app-recommender/internal/types"
)

// Catalog lists the apps that are currently active.
type Catalog interface {
	ListActiveApps(ctx context.Context) ([]types.App, error)
}

// ResponseStore reads a user's stored onboarding answer.
// It returns (nil, nil) when the user has not answered the question.
type ResponseStore interface {
	GetOnboardingResponse(ctx context.Context, userID uuid.UUID, questionKey string) (json.RawMessage, error)
}

// Engine computes recommendations. It holds no per-request state and is safe
// for concurrent use.
type Engine struct {
	catalog   Catalog
	responses ResponseStore
	tables    ScoreTables
	logger    *zap.Logger
}

// NewEngine creates an engine over the given collaborators and tables.
// A nil logger disables logging.
func NewEngine(catalog Catalog, responses ResponseStore, tables ScoreTables, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		catalog:   catalog,
		responses: responses,
		tables:    tables.clone(),
		logger:    logger,
	}
}

// Tables returns a copy of the engine's scoring tables.
func (e *Engine) Tables() ScoreTables {
	return e.tables.clone()
}

// Recommend returns every active, routed app scored for the user, best first.
// The catalog and both answers are read concurrently; if any read fails the
// whole call fails and no recommendations are returned.
func (e *Engine) Recommend(ctx context.Context, userID uuid.UUID) ([]types.Recommendation, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	var (
		apps         []types.App
		interestsRaw json.RawMessage
		situationRaw json.RawMessage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		apps, err = e.catalog.ListActiveApps(gctx)
		if err != nil {
			return &UpstreamError{Source: SourceCatalog, Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		interestsRaw, err = e.responses.GetOnboardingResponse(gctx, userID, onboarding.KeyInterests)
		if err != nil {
			return &UpstreamError{Source: SourceResponses, Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		situationRaw, err = e.responses.GetOnboardingResponse(gctx, userID, onboarding.KeyCurrentSituation)
		if err != nil {
			return &UpstreamError{Source: SourceResponses, Err: err}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		observability.RecordRecommendation(observability.OutcomeError)
		return nil, err
	}

	interests := e.parse(userID, onboarding.KeyInterests, interestsRaw)
	situation := e.parse(userID, onboarding.KeyCurrentSituation, situationRaw)

	recs := Score(apps, interests, situation, e.tables)
	observability.RecordRecommendation(observability.OutcomeOK)
	e.logger.Debug("computed recommendations",
		zap.String("user_id", userID.String()),
		zap.Int("apps", len(recs)),
	)
	return recs, nil
}

// Top returns at most limit recommendations. A non-positive limit returns all.
func Top(recs []types.Recommendation, limit int) []types.Recommendation {
	if limit <= 0 || limit >= len(recs) {
		return recs
	}
	return recs[:limit]
}

func (e *Engine) parse(userID uuid.UUID, key string, raw json.RawMessage) onboarding.Answer {
	answer := onboarding.Parse(key, raw)
	if absent, ok := answer.(onboarding.Absent); ok && absent.Malformed() {
		observability.RecordMalformedAnswer(key)
		e.logger.Debug("ignoring malformed onboarding answer",
			zap.String("user_id", userID.String()),
			zap.String("question", key),
			zap.String("reason", absent.Reason),
		)
	}
	return answer
}
