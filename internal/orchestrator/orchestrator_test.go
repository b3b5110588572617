package orchestrator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/boardwalk-games/boardwalk/internal/dice"
	diceMocks "github.com/boardwalk-games/boardwalk/internal/dice/mocks"
	"github.com/boardwalk-games/boardwalk/internal/engine"
	"github.com/boardwalk-games/boardwalk/internal/models"
	"github.com/boardwalk-games/boardwalk/internal/orchestrator"
	"github.com/boardwalk-games/boardwalk/internal/orchestrator/mocks"
	gameRepo "github.com/boardwalk-games/boardwalk/internal/repositories/game"
	repoMocks "github.com/boardwalk-games/boardwalk/internal/repositories/game/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	agentA   *mocks.MockAgent
	agentB   *mocks.MockAgent
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.agentA = mocks.NewMockAgent(s.mockCtrl)
	s.agentB = mocks.NewMockAgent(s.mockCtrl)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func intPtr(v int) *int { return &v }

func (s *OrchestratorTestSuite) newEngine(roller dice.Roller, scenario []engine.PlayerOverride) *engine.Engine {
	e, err := engine.New(&engine.Config{
		Seed:   42,
		GameID: "orchestrator-test",
		Players: []engine.PlayerSetup{
			{ID: "player-a", Name: "Alice"},
			{ID: "player-b", Name: "Bob"},
		},
		Roller:   roller,
		Scenario: scenario,
	})
	s.Require().NoError(err)
	return e
}

func (s *OrchestratorTestSuite) agents() map[string]orchestrator.Agent {
	return map[string]orchestrator.Agent{
		"player-a": s.agentA,
		"player-b": s.agentB,
	}
}

func (s *OrchestratorTestSuite) TestNewValidation() {
	_, err := orchestrator.New(nil)
	s.Error(err)

	_, err = orchestrator.New(&orchestrator.Config{})
	s.Error(err)

	e := s.newEngine(nil, nil)
	_, err = orchestrator.New(&orchestrator.Config{
		Engine: e,
		Agents: map[string]orchestrator.Agent{"player-a": s.agentA},
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "player-b")
}

// TestFallbacksDriveTheGame runs with agents that never produce a
// valid choice; the deterministic fallbacks alone must reach the turn
// limit.
func (s *OrchestratorTestSuite) TestFallbacksDriveTheGame() {
	e := s.newEngine(nil, nil)

	agentErr := errors.New("agent offline")
	s.agentA.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(models.Action{}, agentErr).AnyTimes()
	s.agentB.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(models.Action{}, agentErr).AnyTimes()
	s.agentA.EXPECT().Bid(gomock.Any(), gomock.Any()).Return(0, agentErr).AnyTimes()
	s.agentB.EXPECT().Bid(gomock.Any(), gomock.Any()).Return(0, agentErr).AnyTimes()

	o, err := orchestrator.New(&orchestrator.Config{
		Engine:   e,
		Agents:   s.agents(),
		MaxTurns: 3,
	})
	s.Require().NoError(err)

	output, err := o.Run(context.Background())
	s.Require().NoError(err)
	s.Equal(3, output.Turns)
	s.Empty(output.Winner)
}

// TestTradeRoutedToRecipient proposes a trade as Alice and checks the
// accept decision is solicited from Bob.
func (s *OrchestratorTestSuite) TestTradeRoutedToRecipient() {
	ctrl := gomock.NewController(s.T())
	roller := diceMocks.NewMockRoller(ctrl)
	roller.EXPECT().RollPair().Return(1, 2).AnyTimes()

	e := s.newEngine(roller, []engine.PlayerOverride{
		{PlayerID: "player-a", Properties: []engine.PropertyOverride{{Position: 1}}},
	})

	offer := &models.TradeOffer{
		From:              "player-a",
		To:                "player-b",
		OfferedProperties: []int{1},
		RequestedMoney:    100,
	}

	proposed := false
	s.agentA.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *orchestrator.ChooseActionInput) (models.Action, error) {
			if !proposed {
				proposed = true
				return models.Action{Type: models.ActionProposeTrade, Trade: offer}, nil
			}
			return models.Action{}, errors.New("no further plans")
		}).AnyTimes()

	var deciderID string
	s.agentB.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *orchestrator.ChooseActionInput) (models.Action, error) {
			deciderID = input.PlayerID
			return models.Action{Type: models.ActionAcceptTrade}, nil
		}).AnyTimes()

	s.agentA.EXPECT().Bid(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	s.agentB.EXPECT().Bid(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	o, err := orchestrator.New(&orchestrator.Config{
		Engine:   e,
		Agents:   s.agents(),
		MaxTurns: 1,
	})
	s.Require().NoError(err)

	output, err := o.Run(context.Background())
	s.Require().NoError(err)

	s.Equal("player-b", deciderID)
	alice, _ := output.State.PlayerByID("player-a")
	bob, _ := output.State.PlayerByID("player-b")
	s.False(alice.Owns(1))
	s.True(bob.Owns(1))
	s.Equal(1600, alice.Balance)
	s.Equal(1400, bob.Balance)
}

// TestAuctionBidHandling clamps an over-balance bid and treats a
// failing bidder as passing.
func (s *OrchestratorTestSuite) TestAuctionBidHandling() {
	ctrl := gomock.NewController(s.T())
	roller := diceMocks.NewMockRoller(ctrl)
	roller.EXPECT().RollPair().Return(2, 1).AnyTimes()

	e := s.newEngine(roller, []engine.PlayerOverride{
		{PlayerID: "player-a", Position: intPtr(38), Balance: intPtr(1300)},
	})

	s.agentA.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *orchestrator.ChooseActionInput) (models.Action, error) {
			switch input.State.Phase {
			case models.PhasePreRoll:
				return models.Action{Type: models.ActionRollDice}, nil
			case models.PhasePurchaseDecision:
				return models.Action{Type: models.ActionDeclinePurchase}, nil
			}
			return models.Action{}, errors.New("done")
		}).AnyTimes()
	s.agentB.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(models.Action{}, errors.New("idle")).AnyTimes()

	s.agentA.EXPECT().Bid(gomock.Any(), gomock.Any()).Return(5000, nil)
	s.agentB.EXPECT().Bid(gomock.Any(), gomock.Any()).Return(0, errors.New("bidder offline"))

	o, err := orchestrator.New(&orchestrator.Config{
		Engine:   e,
		Agents:   s.agents(),
		MaxTurns: 1,
	})
	s.Require().NoError(err)

	output, err := o.Run(context.Background())
	s.Require().NoError(err)

	alice, _ := output.State.PlayerByID("player-a")
	s.True(alice.Owns(1))
	// The 5000 bid was clamped to the full balance of 1500
	s.Equal(0, alice.Balance)
}

// recordingSink captures every observed event in order.
type recordingSink struct {
	events []models.Event
}

func (r *recordingSink) Observe(_ *models.GameState, events []models.Event) {
	r.events = append(r.events, events...)
}

func (s *OrchestratorTestSuite) TestSinkAndRepoWiring() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: client})
	s.Require().NoError(err)

	ctrl := gomock.NewController(s.T())
	roller := diceMocks.NewMockRoller(ctrl)
	roller.EXPECT().RollPair().Return(1, 2).AnyTimes()

	e := s.newEngine(roller, nil)

	agentErr := errors.New("agent offline")
	s.agentA.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(models.Action{}, agentErr).AnyTimes()
	s.agentB.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(models.Action{}, agentErr).AnyTimes()
	s.agentA.EXPECT().Bid(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	s.agentB.EXPECT().Bid(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	sink := &recordingSink{}
	o, err := orchestrator.New(&orchestrator.Config{
		Engine:   e,
		Agents:   s.agents(),
		Sink:     sink,
		Repo:     repo,
		MaxTurns: 1,
	})
	s.Require().NoError(err)

	output, err := o.Run(context.Background())
	s.Require().NoError(err)

	s.Require().NotEmpty(sink.events)
	s.Equal(models.EventDiceRolled, sink.events[0].Type)

	saved, err := repo.GetGame(context.Background(), &gameRepo.GetGameInput{
		GameID: "orchestrator-test",
	})
	s.Require().NoError(err)
	s.Equal(output.State.Turn, saved.Turn)

	history, err := repo.GetEvents(context.Background(), &gameRepo.GetEventsInput{
		GameID: "orchestrator-test",
	})
	s.Require().NoError(err)
	s.Equal(len(sink.events), len(history))
}

// TestRepoFailuresDoNotStopTheGame checks that persistence is best
// effort: a repository that fails every call never aborts the run.
func (s *OrchestratorTestSuite) TestRepoFailuresDoNotStopTheGame() {
	repo := repoMocks.NewMockRepository(s.mockCtrl)
	repoErr := errors.New("redis unavailable")
	repo.EXPECT().SaveGame(gomock.Any(), gomock.Any()).Return(repoErr).AnyTimes()
	repo.EXPECT().AppendEvents(gomock.Any(), gomock.Any()).Return(repoErr).AnyTimes()

	e := s.newEngine(nil, nil)

	agentErr := errors.New("agent offline")
	s.agentA.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(models.Action{}, agentErr).AnyTimes()
	s.agentB.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(models.Action{}, agentErr).AnyTimes()
	s.agentA.EXPECT().Bid(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	s.agentB.EXPECT().Bid(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	o, err := orchestrator.New(&orchestrator.Config{
		Engine:   e,
		Agents:   s.agents(),
		Repo:     repo,
		MaxTurns: 2,
	})
	s.Require().NoError(err)

	output, err := o.Run(context.Background())
	s.Require().NoError(err)
	s.Equal(2, output.Turns)
}

func (s *OrchestratorTestSuite) TestRunHonorsContextCancellation() {
	e := s.newEngine(nil, nil)

	s.agentA.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(models.Action{}, errors.New("offline")).AnyTimes()
	s.agentB.EXPECT().ChooseAction(gomock.Any(), gomock.Any()).Return(models.Action{}, errors.New("offline")).AnyTimes()
	s.agentA.EXPECT().Bid(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()
	s.agentB.EXPECT().Bid(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	o, err := orchestrator.New(&orchestrator.Config{
		Engine: e,
		Agents: s.agents(),
	})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = o.Run(ctx)
	s.ErrorIs(err, context.Canceled)
}
