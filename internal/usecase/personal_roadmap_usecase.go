package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"skillmapper/internal/domain/roadmap"
	"skillmapper/internal/domain/user"
	"skillmapper/internal/infrastructure/generation"
	"skillmapper/internal/ws"
)

var ErrProfileIncomplete = errors.New("profile has no target role")

const (
	generationLockTTL  = 2 * time.Minute
	generationPollStep = 2 * time.Second
	generationPollMax  = 15
)

// PersonalRoadmapUsecase implements GenerateOrFetch: a user's roadmap is
// generated at most once and every later request returns the persisted copy.
type PersonalRoadmapUsecase struct {
	users     user.Repository
	roadmaps  roadmap.PersonalRepository
	generator generation.Client
	cache     Cache
	logger    *log.Logger
}

func NewPersonalRoadmapUsecase(
	users user.Repository,
	roadmaps roadmap.PersonalRepository,
	generator generation.Client,
	cache Cache,
	logger *log.Logger,
) *PersonalRoadmapUsecase {
	return &PersonalRoadmapUsecase{
		users:     users,
		roadmaps:  roadmaps,
		generator: generator,
		cache:     cache,
		logger:    logger,
	}
}

func (u *PersonalRoadmapUsecase) GenerateOrFetch(ctx context.Context, userID uuid.UUID) (roadmap.PersonalRoadmap, error) {
	existing, err := u.roadmaps.Get(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, roadmap.ErrNotFound) {
		return roadmap.PersonalRoadmap{}, ErrInternal
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return roadmap.PersonalRoadmap{}, err
		}
		return roadmap.PersonalRoadmap{}, ErrInternal
	}
	if usr.Goal == "" {
		return roadmap.PersonalRoadmap{}, ErrProfileIncomplete
	}

	// Best-effort guard against paying for two model calls when concurrent
	// first requests race. Losing the lock is safe: the upsert below keeps
	// the stored document deterministic either way.
	lockKey := fmt.Sprintf("roadmap:generate:lock:%s", userID)
	locked, _ := u.tryLock(ctx, lockKey)
	if !locked {
		if doc, ok := u.awaitPeer(ctx, userID); ok {
			return doc, nil
		}
	} else {
		defer func() {
			if u.cache != nil {
				_ = u.cache.Delete(context.Background(), lockKey)
			}
		}()
	}

	generated, err := u.generator.GenerateRoadmap(ctx, usr.Skills, usr.Goal)
	if err != nil {
		return roadmap.PersonalRoadmap{}, err
	}

	doc := roadmap.Normalize(generated)

	if err := u.roadmaps.Upsert(ctx, userID, doc); err != nil {
		return roadmap.PersonalRoadmap{}, ErrInternal
	}

	if u.logger != nil {
		u.logger.Printf("Roadmap generated | user_id=%s role=%s phases=%d", userID, doc.Role, len(doc.PersonalisedSteps))
	}
	ws.NotifyRoadmapGenerated(userID.String(), doc.Role)

	return doc, nil
}

func (u *PersonalRoadmapUsecase) tryLock(ctx context.Context, key string) (bool, error) {
	if u.cache == nil {
		return true, nil
	}
	ok, err := u.cache.SetIfNotExists(ctx, key, "1", generationLockTTL)
	if err != nil {
		// Treat a broken cache as no lock infrastructure at all.
		return true, nil
	}
	if !ok {
		return false, nil
	}
	return true, nil
}

// awaitPeer polls the store for the document a concurrent request is
// generating. Giving up just falls back to generating ourselves.
func (u *PersonalRoadmapUsecase) awaitPeer(ctx context.Context, userID uuid.UUID) (roadmap.PersonalRoadmap, bool) {
	for i := 0; i < generationPollMax; i++ {
		select {
		case <-ctx.Done():
			return roadmap.PersonalRoadmap{}, false
		case <-time.After(generationPollStep):
		}

		doc, err := u.roadmaps.Get(ctx, userID)
		if err == nil {
			return doc, true
		}
		if !errors.Is(err, roadmap.ErrNotFound) {
			return roadmap.PersonalRoadmap{}, false
		}
	}
	return roadmap.PersonalRoadmap{}, false
}
