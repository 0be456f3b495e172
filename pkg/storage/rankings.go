package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brandlens/brandlens/ent"
	"github.com/brandlens/brandlens/ent/rankingsnapshot"
	"github.com/brandlens/brandlens/pkg/ranking"
	"github.com/google/uuid"
)

// SaveRankingSnapshot persists a ranking dataset for later comparison.
// The snapshot ID is generated when empty and returned.
func (s *Store) SaveRankingSnapshot(ctx context.Context, snapshot ranking.Snapshot) (string, error) {
	id := snapshot.ID
	if id == "" {
		id = uuid.New().String()
	}

	rows, err := rankingRows(snapshot.Rankings)
	if err != nil {
		return "", err
	}

	builder := s.client.RankingSnapshot.Create().
		SetID(id).
		SetTargetDomain(snapshot.TargetDomain).
		SetRankings(rows)
	if !snapshot.TakenAt.IsZero() {
		builder.SetTakenAt(snapshot.TakenAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return "", ErrAlreadyExists
		}
		return "", fmt.Errorf("failed to save ranking snapshot: %w", err)
	}
	return id, nil
}

// GetRankingSnapshot loads one snapshot by ID.
func (s *Store) GetRankingSnapshot(ctx context.Context, id string) (ranking.Snapshot, error) {
	row, err := s.client.RankingSnapshot.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return ranking.Snapshot{}, ErrNotFound
		}
		return ranking.Snapshot{}, fmt.Errorf("failed to load ranking snapshot: %w", err)
	}
	return snapshotOf(row)
}

// LatestRankingSnapshot returns the newest snapshot for a domain.
func (s *Store) LatestRankingSnapshot(ctx context.Context, targetDomain string) (ranking.Snapshot, error) {
	row, err := s.client.RankingSnapshot.Query().
		Where(rankingsnapshot.TargetDomain(targetDomain)).
		Order(ent.Desc(rankingsnapshot.FieldTakenAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ranking.Snapshot{}, ErrNotFound
		}
		return ranking.Snapshot{}, fmt.Errorf("failed to load latest ranking snapshot: %w", err)
	}
	return snapshotOf(row)
}

func snapshotOf(row *ent.RankingSnapshot) (ranking.Snapshot, error) {
	data, err := json.Marshal(row.Rankings)
	if err != nil {
		return ranking.Snapshot{}, fmt.Errorf("failed to encode stored rankings: %w", err)
	}
	var rankings []ranking.QueryRanking
	if err := json.Unmarshal(data, &rankings); err != nil {
		return ranking.Snapshot{}, fmt.Errorf("failed to decode stored rankings: %w", err)
	}

	return ranking.Snapshot{
		ID:           row.ID,
		TargetDomain: row.TargetDomain,
		TakenAt:      row.TakenAt,
		Rankings:     rankings,
	}, nil
}

func rankingRows(rankings []ranking.QueryRanking) ([]map[string]any, error) {
	data, err := json.Marshal(rankings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rankings: %w", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode rankings: %w", err)
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	return rows, nil
}
