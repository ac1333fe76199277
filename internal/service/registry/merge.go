package registry

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tastebite-backend/internal/domain"
	"github.com/heartmarshall/tastebite-backend/internal/metrics"
	"github.com/heartmarshall/tastebite-backend/internal/service/reconcile"
)

// MergeReport summarizes one MergeDuplicates run.
type MergeReport struct {
	GroupsFound    int
	GroupsMerged   int
	RecipesRemoved int
	Relations      reconcile.Result
	Failures       []GroupFailure
}

// GroupFailure records a duplicate group that could not be merged. Its
// recipes are left untouched for the next run.
type GroupFailure struct {
	ExternalID string
	Err        error
}

// MergeDuplicates collapses every set of recipes sharing an external id into
// one keeper. Each group runs in its own transaction: the keeper is assigned
// to the system account, the relations of every other member are repointed
// onto it, shopping list provenance naming them is rewritten to the keeper
// and those members are deleted. A failing group is rolled back,
// recorded in the report and skipped. The returned error is non-nil only
// when the run could not start.
//
// The pass must not run concurrently with itself. Running it with no
// duplicates left performs no writes.
func (s *Service) MergeDuplicates(ctx context.Context) (*MergeReport, error) {
	report := &MergeReport{}

	ids, err := s.recipes.ListDuplicateExternalIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list duplicate external ids: %w", err)
	}
	report.GroupsFound = len(ids)
	if len(ids) == 0 {
		s.log.InfoContext(ctx, "no duplicate recipes found")
		return report, nil
	}

	system, err := s.users.EnsureSystemUser(ctx, s.system.Email, s.system.Name)
	if err != nil {
		return nil, fmt.Errorf("ensure system user: %w", err)
	}

	for _, externalID := range ids {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		var (
			removed   int
			relations reconcile.Result
		)
		txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			var err error
			removed, relations, err = s.mergeGroup(txCtx, externalID, system.ID)
			return err
		})
		if txErr != nil {
			metrics.MergeGroups.WithLabelValues("failed").Inc()
			s.log.ErrorContext(ctx, "merge group failed",
				slog.String("external_id", externalID),
				slog.String("error", txErr.Error()),
			)
			report.Failures = append(report.Failures, GroupFailure{ExternalID: externalID, Err: txErr})
			continue
		}

		if removed == 0 {
			continue
		}
		metrics.MergeGroups.WithLabelValues("merged").Inc()
		metrics.MergeRecipesRemoved.Add(float64(removed))
		report.GroupsMerged++
		report.RecipesRemoved += removed
		report.Relations.Add(relations)
	}

	s.log.InfoContext(ctx, "duplicate merge finished",
		slog.Int("groups_found", report.GroupsFound),
		slog.Int("groups_merged", report.GroupsMerged),
		slog.Int("groups_failed", len(report.Failures)),
		slog.Int("recipes_removed", report.RecipesRemoved),
	)

	return report, nil
}

// mergeGroup merges one duplicate group inside the caller's transaction and
// returns how many recipes were removed.
func (s *Service) mergeGroup(ctx context.Context, externalID string, systemID uuid.UUID) (int, reconcile.Result, error) {
	var relations reconcile.Result

	group, err := s.recipes.ListByExternalID(ctx, externalID)
	if err != nil {
		return 0, relations, fmt.Errorf("list recipes: %w", err)
	}
	if len(group) < 2 {
		return 0, relations, nil
	}

	keeper := chooseKeeper(group, systemID)

	if keeper.OwnerID != systemID {
		if err := s.recipes.UpdateOwner(ctx, keeper.ID, systemID); err != nil {
			return 0, relations, fmt.Errorf("assign keeper to system account: %w", err)
		}
	}

	removed := 0
	for _, loser := range group {
		if loser.ID == keeper.ID {
			continue
		}

		res, err := s.reconciler.Repoint(ctx, loser.ID, keeper.ID)
		if err != nil {
			return 0, relations, fmt.Errorf("repoint relations of %s: %w", loser.ID, err)
		}
		relations.Add(res)

		if err := s.recipes.Delete(ctx, loser.ID); err != nil {
			return 0, relations, fmt.Errorf("delete duplicate %s: %w", loser.ID, err)
		}
		removed++
	}

	s.log.InfoContext(ctx, "duplicate group merged",
		slog.String("external_id", externalID),
		slog.String("keeper_id", keeper.ID.String()),
		slog.Int("removed", removed),
	)

	return removed, relations, nil
}

// chooseKeeper picks the recipe that survives a merge: one owned by the
// system account if any, otherwise any member. Among candidates the
// earliest created wins, then the lowest id.
func chooseKeeper(group []domain.Recipe, systemID uuid.UUID) domain.Recipe {
	var (
		keeper    domain.Recipe
		found     bool
		keeperSys bool
	)
	for _, r := range group {
		isSys := r.OwnerID == systemID
		switch {
		case !found:
		case isSys != keeperSys:
			if !isSys {
				continue
			}
		case !earlier(r, keeper):
			continue
		}
		keeper, keeperSys, found = r, isSys, true
	}
	return keeper
}

func earlier(a, b domain.Recipe) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}
