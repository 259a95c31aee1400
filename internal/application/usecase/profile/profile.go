package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dijkstra-edu/dataforge/adapters/event"
	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/user"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
	userRepo    user.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewProfileUseCase(pRepo profile.Repository, uRepo user.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: pRepo,
		userRepo:    uRepo,
		kafkaClient: kClient,
		logger:      log,
	}
}

// Create enforces one profile per user: the owning user must exist and
// the unique constraint on user_id turns a racing duplicate into a
// conflict instead of a second row.
func (uc *ProfileUseCase) Create(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	if _, err := uc.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &profile.Profile{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.profileRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.publishEvent(event.ProfileEventTypeCreated, p.ID, p.UserID)
	return p, nil
}

func (uc *ProfileUseCase) Get(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	return uc.profileRepo.FindByID(ctx, id)
}

func (uc *ProfileUseCase) GetByUser(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	return uc.profileRepo.FindByUserID(ctx, userID)
}

func (uc *ProfileUseCase) List(ctx context.Context, filter profile.ListFilter) ([]*profile.Profile, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return uc.profileRepo.List(ctx, filter)
}

func (uc *ProfileUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := uc.profileRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.profileRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.publishEvent(event.ProfileEventTypeDeleted, p.ID, p.UserID)
	return nil
}

func (uc *ProfileUseCase) publishEvent(eventType string, profileID, userID uuid.UUID) {
	if uc.kafkaClient == nil {
		return
	}
	go func() {
		err := uc.kafkaClient.PublishProfileEvent(context.Background(), event.ProfileEventPayload{
			EventType:  eventType,
			ProfileID:  profileID,
			UserID:     userID,
			OccurredAt: time.Now().UTC(),
		})
		if err != nil {
			uc.logger.Error("Failed to publish profile event", err, zap.String("profile_id", profileID.String()))
		}
	}()
}
