package http

import (
	"context"

	"github.com/GoSim-25-26J-441/clan-api/internal/clans/domain"
	"go.uber.org/zap"
)

// ClanStore is the storage side of the clan endpoints.
type ClanStore interface {
	Create(ctx context.Context, name, region string) (*domain.Clan, error)
	List(ctx context.Context) ([]domain.Clan, error)
	Search(ctx context.Context, query string) ([]domain.Clan, error)
	Delete(ctx context.Context, id string) (string, error)
}

// Handler bundles the dependencies for clan HTTP endpoints.
type Handler struct {
	store ClanStore
	log   *zap.Logger
}

func New(store ClanStore, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: store, log: log}
}

// createClanRequest is the POST /clans body. Absent or null fields decode
// to "" and are rejected by domain.NormalizeNewClan, not by binding.
type createClanRequest struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

// searchClansQuery is optional so a missing name yields our own 400 body.
type searchClansQuery struct {
	Name string `form:"name"`
}

type clanResponse struct {
	Data *domain.Clan `json:"data"`
}

type clanListResponse struct {
	Data  []domain.Clan `json:"data"`
	Count int           `json:"count"`
}

type deleteResponse struct {
	DeletedID string `json:"deleted_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}
