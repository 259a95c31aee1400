package leetcode

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dijkstra-edu/dataforge/adapters/event"
	"github.com/dijkstra-edu/dataforge/internal/domain/leetcode"
	"github.com/dijkstra-edu/dataforge/internal/domain/profile"
	"github.com/dijkstra-edu/dataforge/internal/domain/vocab"
	"github.com/dijkstra-edu/dataforge/pkg/apperror"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
)

// SyncUseCase pulls a user's public LeetCode stats and reconciles them
// into the stored record for a profile. One call is authoritative for
// the whole record: on the update branch every mapped field is
// overwritten, including fields the new payload left empty.
type SyncUseCase struct {
	leetcodeRepo leetcode.Repository
	profileRepo  profile.Repository
	fetcher      leetcode.Fetcher
	kafkaClient  *event.KafkaProducerClient
	logger       logger.Logger
}

func NewSyncUseCase(lRepo leetcode.Repository, pRepo profile.Repository, fetcher leetcode.Fetcher, kClient *event.KafkaProducerClient, log logger.Logger) *SyncUseCase {
	return &SyncUseCase{
		leetcodeRepo: lRepo,
		profileRepo:  pRepo,
		fetcher:      fetcher,
		kafkaClient:  kClient,
		logger:       log,
	}
}

type SyncInput struct {
	ProfileID uuid.UUID
	Username  string
}

type SyncOutput struct {
	Record  *leetcode.Record
	Created bool
}

func (uc *SyncUseCase) Execute(ctx context.Context, input SyncInput) (*SyncOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, apperror.NewInvalidInput("username must not be empty", nil)
	}

	if _, err := uc.profileRepo.FindByID(ctx, input.ProfileID); err != nil {
		return nil, err
	}

	raw, err := uc.fetcher.Fetch(ctx, username)
	if err != nil {
		return nil, apperror.NewUpstream("leetcode profile fetch failed", err)
	}

	now := time.Now().UTC()
	mapped := mapRawProfile(username, raw)

	existing, err := uc.leetcodeRepo.FindByProfileID(ctx, input.ProfileID)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	created := false
	var record *leetcode.Record
	if existing == nil {
		record = mapped
		record.ID = uuid.New()
		record.ProfileID = input.ProfileID
		record.CreatedAt = now
		record.UpdatedAt = now
		if err := uc.leetcodeRepo.Create(ctx, record); err != nil {
			return nil, err
		}
		created = true
	} else {
		record = existing
		applyMappedFields(record, mapped)
		record.UpdatedAt = now
		if err := uc.leetcodeRepo.Update(ctx, record); err != nil {
			return nil, err
		}
	}

	if uc.kafkaClient != nil {
		go func() {
			err := uc.kafkaClient.PublishSyncEvent(context.Background(), event.SyncEventPayload{
				EventType:  event.SyncEventTypeCompleted,
				ProfileID:  record.ProfileID,
				Username:   username,
				Created:    created,
				OccurredAt: now,
			})
			if err != nil {
				uc.logger.Error("Failed to publish sync event", err, zap.String("profile_id", record.ProfileID.String()))
			}
		}()
	}

	return &SyncOutput{Record: record, Created: created}, nil
}

// mapRawProfile reshapes the normalized upstream payload into record
// fields. Identity, profile binding and timestamps are left to the
// caller.
func mapRawProfile(username string, raw *leetcode.RawProfile) *leetcode.Record {
	p := raw.Profile
	rec := &leetcode.Record{
		Username:      &username,
		RealName:      p.RealName,
		AboutMe:       p.AboutMe,
		School:        p.School,
		Websites:      joinWebsites(p.Websites),
		Country:       p.CountryName,
		Company:       p.Company,
		JobTitle:      p.JobTitle,
		Avatar:        p.UserAvatar,
		SkillTags:     vocab.ParseTools(p.SkillTags),
		Ranking:       p.Ranking,
		Reputation:    p.Reputation,
		SolutionCount: p.SolutionCount,
	}

	rec.TotalProblemsSolved = difficultyCount(raw.SubmitStats, "All")
	rec.EasyProblemsSolved = difficultyCount(raw.SubmitStats, "Easy")
	rec.MediumProblemsSolved = difficultyCount(raw.SubmitStats, "Medium")
	rec.HardProblemsSolved = difficultyCount(raw.SubmitStats, "Hard")

	rec.LanguageProblemCount = languageCounts(raw.LanguageProblemCount)

	if cr := raw.ContestRanking; cr != nil {
		rec.AttendedContests = cr.AttendedContestsCount
		rec.CompetitionRating = cr.Rating
		rec.GlobalRanking = cr.GlobalRanking
		rec.TotalParticipants = cr.TotalParticipants
		rec.TopPercentage = cr.TopPercentage
		if cr.Badge != nil {
			badge := cr.Badge.Name
			rec.CompetitionBadge = &badge
		}
	}

	return rec
}

// applyMappedFields overwrites every synced field on dst, nils
// included. Previous values never survive a resync.
func applyMappedFields(dst, src *leetcode.Record) {
	dst.Username = src.Username
	dst.RealName = src.RealName
	dst.AboutMe = src.AboutMe
	dst.School = src.School
	dst.Websites = src.Websites
	dst.Country = src.Country
	dst.Company = src.Company
	dst.JobTitle = src.JobTitle
	dst.Avatar = src.Avatar
	dst.SkillTags = src.SkillTags
	dst.Ranking = src.Ranking
	dst.Reputation = src.Reputation
	dst.SolutionCount = src.SolutionCount
	dst.TotalProblemsSolved = src.TotalProblemsSolved
	dst.EasyProblemsSolved = src.EasyProblemsSolved
	dst.MediumProblemsSolved = src.MediumProblemsSolved
	dst.HardProblemsSolved = src.HardProblemsSolved
	dst.LanguageProblemCount = src.LanguageProblemCount
	dst.AttendedContests = src.AttendedContests
	dst.CompetitionRating = src.CompetitionRating
	dst.GlobalRanking = src.GlobalRanking
	dst.TotalParticipants = src.TotalParticipants
	dst.TopPercentage = src.TopPercentage
	dst.CompetitionBadge = src.CompetitionBadge
}

// difficultyCount returns nil when the label never appears, so "no
// data" stays distinct from "zero solved".
func difficultyCount(stats []leetcode.RawSubmissionCount, label string) *int {
	for _, s := range stats {
		if s.Difficulty == label {
			count := s.Count
			return &count
		}
	}
	return nil
}

func languageCounts(raw []leetcode.RawLanguageCount) []leetcode.LanguageCount {
	if len(raw) == 0 {
		return nil
	}
	counts := make([]leetcode.LanguageCount, 0, len(raw))
	for _, r := range raw {
		counts = append(counts, leetcode.LanguageCount{
			Language:       r.LanguageName,
			ProblemsSolved: r.ProblemsSolved,
		})
	}
	return counts
}

func joinWebsites(sites []string) *string {
	if len(sites) == 0 {
		return nil
	}
	joined := strings.Join(sites, ",")
	return &joined
}
