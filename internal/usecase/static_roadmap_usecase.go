package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"skillmapper/internal/catalog"
	"skillmapper/internal/domain/roadmap"
	"skillmapper/internal/search"
)

var ErrRoadmapNotInCatalog = errors.New("roadmap not in catalog")

const detailsCacheTTL = time.Hour

// StaticRoadmapUsecase serves the bundled role catalog and seeds catalog
// entries into the store on demand.
type StaticRoadmapUsecase struct {
	roadmaps roadmap.StaticRepository
	cache    Cache
}

func NewStaticRoadmapUsecase(roadmaps roadmap.StaticRepository, cache Cache) *StaticRoadmapUsecase {
	return &StaticRoadmapUsecase{roadmaps: roadmaps, cache: cache}
}

func (u *StaticRoadmapUsecase) TrendingRoles(_ context.Context) (json.RawMessage, error) {
	return catalog.TrendingRoles()
}

func (u *StaticRoadmapUsecase) OtherRoles(_ context.Context) (json.RawMessage, error) {
	return catalog.OtherRoles()
}

// Details returns the catalog entries matching a roadmap id. The response is
// array-shaped: an unknown id yields an empty slice, not an error.
func (u *StaticRoadmapUsecase) Details(ctx context.Context, roadmapID int) ([]roadmap.StaticRoadmap, error) {
	key := fmt.Sprintf("roles:details:%d", roadmapID)
	if u.cache != nil {
		var cached []roadmap.StaticRoadmap
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	doc, found, err := catalog.FindRoleDetail(roadmapID)
	if err != nil {
		return nil, err
	}

	out := make([]roadmap.StaticRoadmap, 0, 1)
	if found {
		out = append(out, doc)
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, detailsCacheTTL)
	}
	return out, nil
}

// Search ranks catalog entries against a free-text query. An empty or
// non-matching query yields an empty slice.
func (u *StaticRoadmapUsecase) Search(_ context.Context, query string) ([]roadmap.StaticRoadmap, error) {
	normalized := search.NormalizeQuery(query)
	if normalized == "" {
		return []roadmap.StaticRoadmap{}, nil
	}

	roles, err := catalog.RoleDetails()
	if err != nil {
		return nil, err
	}

	return search.RankRoles(roles, search.ExpandQuery(normalized)), nil
}

// Seed copies one catalog entry into the store. Seeding the same id twice
// fails with roadmap.ErrAlreadySeeded.
func (u *StaticRoadmapUsecase) Seed(ctx context.Context, roadmapID int) (roadmap.StaticRoadmap, error) {
	doc, found, err := catalog.FindRoleDetail(roadmapID)
	if err != nil {
		return roadmap.StaticRoadmap{}, err
	}
	if !found {
		return roadmap.StaticRoadmap{}, ErrRoadmapNotInCatalog
	}

	if err := u.roadmaps.Insert(ctx, doc); err != nil {
		return roadmap.StaticRoadmap{}, err
	}
	return doc, nil
}
