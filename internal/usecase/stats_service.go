package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/goalmaven/goal-maven/internal/domain/league"
	"github.com/goalmaven/goal-maven/internal/domain/matchevent"
	"github.com/goalmaven/goal-maven/internal/domain/player"
	"github.com/goalmaven/goal-maven/internal/domain/stats"
	"github.com/goalmaven/goal-maven/internal/domain/team"
)

// StatsService computes per-season aggregates on the fly from match events
// and league table rows. Nothing here is persisted.
type StatsService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	seasonRepo league.SeasonRepository
	tableRepo  league.TableRepository
	eventRepo  matchevent.Repository
}

func NewStatsService(
	playerRepo player.Repository,
	teamRepo team.Repository,
	seasonRepo league.SeasonRepository,
	tableRepo league.TableRepository,
	eventRepo matchevent.Repository,
) *StatsService {
	return &StatsService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		seasonRepo: seasonRepo,
		tableRepo:  tableRepo,
		eventRepo:  eventRepo,
	}
}

func inNames(name string, names []string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// PlayerStats aggregates one player's events across the named season.
func (s *StatsService) PlayerStats(ctx context.Context, playerID int64, seasonName string) (stats.PlayerSeason, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.PlayerStats")
	defer span.End()

	p, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return stats.PlayerSeason{}, fmt.Errorf("get player: %w", err)
	}
	if !found {
		return stats.PlayerSeason{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	season, err := resolveSeason(ctx, s.seasonRepo, seasonName)
	if err != nil {
		return stats.PlayerSeason{}, err
	}

	result := stats.PlayerSeason{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		SeasonName: season.Name,
	}

	var counts []matchevent.TypeCount
	var assists int

	grp := pool.New().WithErrors().WithContext(ctx)
	grp.Go(func(ctx context.Context) error {
		var err error
		counts, err = s.eventRepo.CountsByPlayerAndSeason(ctx, playerID, season.ID)
		return err
	})
	grp.Go(func(ctx context.Context) error {
		var err error
		assists, err = s.eventRepo.AssistCount(ctx, playerID, season.ID)
		return err
	})
	if err := grp.Wait(); err != nil {
		return stats.PlayerSeason{}, fmt.Errorf("aggregate player events: %w", err)
	}

	result.Assists = assists
	for _, c := range counts {
		switch {
		case inNames(c.TypeName, matchevent.GoalTypes):
			result.Goals += c.Count
		case inNames(c.TypeName, matchevent.FoulTypes):
			result.Fouls += c.Count
		case c.TypeName == matchevent.TypeYellowCard:
			result.YellowCards += c.Count
		case c.TypeName == matchevent.TypeRedCard:
			result.RedCards += c.Count
		case c.TypeName == matchevent.TypeShotOnTarget:
			result.ShotsOnTarget += c.Count
		case c.TypeName == matchevent.TypeOwnGoal:
			result.OwnGoals += c.Count
		}
	}
	return result, nil
}

// TeamStats combines a team's league table row for the named season with the
// per-category top performers. A team without a table row in that season is a
// not-found.
func (s *StatsService) TeamStats(ctx context.Context, teamID int64, seasonName string) (stats.TeamSeason, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.TeamStats")
	defer span.End()

	t, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return stats.TeamSeason{}, fmt.Errorf("get team: %w", err)
	}
	if !found {
		return stats.TeamSeason{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	season, err := resolveSeason(ctx, s.seasonRepo, seasonName)
	if err != nil {
		return stats.TeamSeason{}, err
	}

	row, found, err := s.tableRepo.GetByTeamAndSeason(ctx, teamID, season.ID)
	if err != nil {
		return stats.TeamSeason{}, fmt.Errorf("get league table row: %w", err)
	}
	if !found {
		return stats.TeamSeason{}, fmt.Errorf("%w: team %q has no standing in season %q", ErrNotFound, t.Name, season.Name)
	}

	result := stats.TeamSeason{
		TeamID:         t.ID,
		TeamName:       t.Name,
		SeasonName:     season.Name,
		Points:         row.Points,
		Position:       row.Position,
		MatchesPlayed:  row.MatchesPlayed,
		MatchesWon:     row.MatchesWon,
		MatchesDrawn:   row.MatchesDrawn,
		MatchesLost:    row.MatchesLost,
		GoalsScored:    row.GoalsScored,
		GoalsAgainst:   row.GoalsAgainst,
		GoalDifference: row.GoalDifference,
	}

	assign := func(dst **stats.TopPerformer) func(matchevent.PlayerCount, bool) {
		return func(pc matchevent.PlayerCount, found bool) {
			if found {
				*dst = &stats.TopPerformer{PlayerName: pc.PlayerName, Count: pc.Count}
			}
		}
	}
	topOf := func(typeNames []string, set func(matchevent.PlayerCount, bool)) func(context.Context) error {
		return func(ctx context.Context) error {
			pc, found, err := s.eventRepo.TopForTeam(ctx, teamID, season.ID, typeNames)
			if err != nil {
				return err
			}
			set(pc, found)
			return nil
		}
	}

	grp := pool.New().WithErrors().WithContext(ctx)
	grp.Go(topOf(matchevent.GoalTypes, assign(&result.TopScorer)))
	grp.Go(topOf([]string{matchevent.TypeYellowCard}, assign(&result.MostYellows)))
	grp.Go(topOf([]string{matchevent.TypeRedCard}, assign(&result.MostReds)))
	grp.Go(func(ctx context.Context) error {
		pc, found, err := s.eventRepo.TopAssistsForTeam(ctx, teamID, season.ID)
		if err != nil {
			return err
		}
		assign(&result.TopAssister)(pc, found)
		return nil
	})
	if err := grp.Wait(); err != nil {
		return stats.TeamSeason{}, fmt.Errorf("aggregate team events: %w", err)
	}
	return result, nil
}
