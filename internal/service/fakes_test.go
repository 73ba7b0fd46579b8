package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"cricguess/internal/game"
	"cricguess/internal/model"

	"github.com/stretchr/testify/require"
)

// In-memory fakes for the repository and cache interfaces. They copy on
// read and write like the real stores do, so aliasing bugs cannot hide
// behind shared pointers.

type fakePuzzleRepo struct {
	puzzles map[int]model.Puzzle
	failing bool
}

func newFakePuzzleRepo() *fakePuzzleRepo {
	return &fakePuzzleRepo{puzzles: make(map[int]model.Puzzle)}
}

func (f *fakePuzzleRepo) Upsert(ctx context.Context, puzzle *model.Puzzle) error {
	f.puzzles[puzzle.ID] = *puzzle
	return nil
}

func (f *fakePuzzleRepo) GetByID(ctx context.Context, id int) (*model.Puzzle, error) {
	if f.failing {
		return nil, fmt.Errorf("puzzle store offline")
	}
	p, ok := f.puzzles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePuzzleRepo) Count(ctx context.Context) (int, error) {
	if f.failing {
		return 0, fmt.Errorf("puzzle store offline")
	}
	return len(f.puzzles), nil
}

type fakePlayerRepo struct {
	players map[string]model.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[string]model.Player)}
}

func (f *fakePlayerRepo) Upsert(ctx context.Context, player *model.Player) error {
	f.players[player.ID] = *player
	return nil
}

func (f *fakePlayerRepo) GetByID(ctx context.Context, id string) (*model.Player, error) {
	p, ok := f.players[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePlayerRepo) List(ctx context.Context) ([]*model.Player, error) {
	list := make([]*model.Player, 0, len(f.players))
	for id := range f.players {
		p := f.players[id]
		list = append(list, &p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].FullName < list[j].FullName })
	return list, nil
}

type fakeSessionRepo struct {
	sessions map[string]model.GameSession
	saves    int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]model.GameSession)}
}

func sessionKey(deviceID string, puzzleID int) string {
	return fmt.Sprintf("%s|%d", deviceID, puzzleID)
}

func copySession(s model.GameSession) model.GameSession {
	guesses := make([]model.GuessRecord, len(s.Guesses))
	copy(guesses, s.Guesses)
	s.Guesses = guesses
	return s
}

func (f *fakeSessionRepo) Get(ctx context.Context, deviceID string, puzzleID int) (*model.GameSession, error) {
	s, ok := f.sessions[sessionKey(deviceID, puzzleID)]
	if !ok {
		return nil, nil
	}
	out := copySession(s)
	return &out, nil
}

func (f *fakeSessionRepo) Save(ctx context.Context, session *model.GameSession) error {
	if session.ID == "" {
		session.ID = fmt.Sprintf("sess-%d", len(f.sessions)+1)
	}
	f.sessions[sessionKey(session.DeviceID, session.PuzzleID)] = copySession(*session)
	f.saves++
	return nil
}

type fakeLeaderboardRepo struct {
	entries []model.LeaderboardEntry
}

func (f *fakeLeaderboardRepo) Insert(ctx context.Context, entry *model.LeaderboardEntry) (bool, error) {
	for _, e := range f.entries {
		if e.DeviceID == entry.DeviceID && e.PuzzleDate == entry.PuzzleDate {
			return false, nil
		}
	}
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("entry-%d", len(f.entries)+1)
	}
	f.entries = append(f.entries, *entry)
	return true, nil
}

func (f *fakeLeaderboardRepo) Get(ctx context.Context, deviceID, puzzleDate string) (*model.LeaderboardEntry, error) {
	for i := range f.entries {
		if f.entries[i].DeviceID == deviceID && f.entries[i].PuzzleDate == puzzleDate {
			e := f.entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaderboardRepo) ListByDate(ctx context.Context, puzzleDate string) ([]model.LeaderboardEntry, error) {
	var out []model.LeaderboardEntry
	for _, e := range f.entries {
		if e.PuzzleDate == puzzleDate {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}

func (f *fakeLeaderboardRepo) ListByEmail(ctx context.Context, email string) ([]model.LeaderboardEntry, error) {
	var out []model.LeaderboardEntry
	for _, e := range f.entries {
		if e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeLeaderboardRepo) AttachEmail(ctx context.Context, deviceID, email string) (int64, error) {
	var modified int64
	for i := range f.entries {
		if f.entries[i].DeviceID == deviceID && f.entries[i].Email != email {
			f.entries[i].Email = email
			modified++
		}
	}
	return modified, nil
}

func (f *fakeLeaderboardRepo) LinkedEmail(ctx context.Context, deviceID string) (string, error) {
	email := ""
	var latest time.Time
	for _, e := range f.entries {
		if e.DeviceID == deviceID && e.Email != "" && (email == "" || e.SubmittedAt.After(latest)) {
			email = e.Email
			latest = e.SubmittedAt
		}
	}
	return email, nil
}

type fakeProfileRepo struct {
	profiles map[string]model.PlayerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]model.PlayerProfile)}
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *model.PlayerProfile) error {
	f.profiles[profile.Email] = *profile
	return nil
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*model.PlayerProfile, error) {
	p, ok := f.profiles[email]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProfileRepo) Top(ctx context.Context, sortKey string, limit int) ([]model.PlayerProfile, error) {
	out := make([]model.PlayerProfile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch sortKey {
		case "winRate":
			return a.WinRate > b.WinRate
		case "bestStreak":
			return a.BestStreak > b.BestStreak
		case "avgGuesses":
			if a.AvgGuesses != b.AvgGuesses {
				return a.AvgGuesses < b.AvgGuesses
			}
			return a.TotalWins > b.TotalWins
		default:
			return a.TotalWins > b.TotalWins
		}
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeSessionCache struct {
	sessions map[string]model.GameSession
	failing  bool
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{sessions: make(map[string]model.GameSession)}
}

func (f *fakeSessionCache) Get(ctx context.Context, deviceID string, puzzleID int) (*model.GameSession, error) {
	if f.failing {
		return nil, fmt.Errorf("cache offline")
	}
	s, ok := f.sessions[sessionKey(deviceID, puzzleID)]
	if !ok {
		return nil, nil
	}
	out := copySession(s)
	return &out, nil
}

func (f *fakeSessionCache) Set(ctx context.Context, session *model.GameSession) error {
	if f.failing {
		return fmt.Errorf("cache offline")
	}
	f.sessions[sessionKey(session.DeviceID, session.PuzzleID)] = copySession(*session)
	return nil
}

func (f *fakeSessionCache) Delete(ctx context.Context, deviceID string, puzzleID int) error {
	delete(f.sessions, sessionKey(deviceID, puzzleID))
	return nil
}

type fakeScheduleCache struct {
	pins    map[string]int
	failing bool
}

func newFakeScheduleCache() *fakeScheduleCache {
	return &fakeScheduleCache{pins: make(map[string]int)}
}

func (f *fakeScheduleCache) Lookup(ctx context.Context, date string) (*int, error) {
	if f.failing {
		return nil, fmt.Errorf("schedule store offline")
	}
	id, ok := f.pins[date]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

func (f *fakeScheduleCache) Set(ctx context.Context, date string, puzzleID int) error {
	f.pins[date] = puzzleID
	return nil
}

func (f *fakeScheduleCache) Delete(ctx context.Context, date string) error {
	delete(f.pins, date)
	return nil
}

type recordedWin struct {
	date     string
	deviceID string
	guesses  int
}

// fakeStandingsCache always misses on GetRank so services exercise their
// Mongo fallback; RecordWin calls are captured for assertions.
type fakeStandingsCache struct {
	wins []recordedWin
}

func (f *fakeStandingsCache) RecordWin(ctx context.Context, date, deviceID string, guessesUsed int, submittedAt time.Time) error {
	f.wins = append(f.wins, recordedWin{date: date, deviceID: deviceID, guesses: guessesUsed})
	return nil
}

func (f *fakeStandingsCache) GetRank(ctx context.Context, date, deviceID string) (int64, error) {
	return -1, nil
}

type fakeSink struct {
	events []model.GameEvent
}

func (f *fakeSink) Emit(event model.GameEvent) {
	f.events = append(f.events, event)
}

func (f *fakeSink) ofType(t model.EventType) []model.GameEvent {
	var out []model.GameEvent
	for _, e := range f.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type fakeBroadcaster struct {
	standings []*model.Standings
	dates     []string
}

func (f *fakeBroadcaster) BroadcastStandings(date string, standings *model.Standings) {
	f.dates = append(f.dates, date)
	f.standings = append(f.standings, standings)
}

type fakeEventRepo struct {
	batches [][]model.GameEvent
}

func (f *fakeEventRepo) InsertBatch(ctx context.Context, events []model.GameEvent) error {
	batch := make([]model.GameEvent, len(events))
	copy(batch, events)
	f.batches = append(f.batches, batch)
	return nil
}

func (f *fakeEventRepo) total() int {
	n := 0
	for _, b := range f.batches {
		n += len(b)
	}
	return n
}

// testEnv wires the full service stack over fakes with a three-puzzle
// catalog: epoch 2024-01-01, four guesses, IST midnights.
type testEnv struct {
	cfg       game.Config
	puzzles   *fakePuzzleRepo
	players   *fakePlayerRepo
	sessions  *fakeSessionRepo
	board     *fakeLeaderboardRepo
	profiles  *fakeProfileRepo
	schedule  *fakeScheduleCache
	sessCache *fakeSessionCache
	standings *fakeStandingsCache
	sink      *fakeSink
	cast      *fakeBroadcaster

	puzzleSvc *PuzzleService
	gameSvc   *GameService
	lbSvc     *LeaderboardService
	profSvc   *ProfileService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg, err := game.NewConfig("2024-01-01", 4, 330)
	require.NoError(t, err)

	env := &testEnv{
		cfg:       cfg,
		puzzles:   newFakePuzzleRepo(),
		players:   newFakePlayerRepo(),
		sessions:  newFakeSessionRepo(),
		board:     &fakeLeaderboardRepo{},
		profiles:  newFakeProfileRepo(),
		schedule:  newFakeScheduleCache(),
		sessCache: newFakeSessionCache(),
		standings: &fakeStandingsCache{},
		sink:      &fakeSink{},
		cast:      &fakeBroadcaster{},
	}

	ctx := context.Background()
	for _, p := range []model.Player{
		{ID: "virat-kohli", FullName: "Virat Kohli", Country: "India", Role: model.RoleBatsman},
		{ID: "jasprit-bumrah", FullName: "Jasprit Bumrah", Country: "India", Role: model.RoleBowler},
		{ID: "steve-smith", FullName: "Steve Smith", Country: "Australia", Role: model.RoleBatsman},
		{ID: "ms-dhoni", FullName: "MS Dhoni", Country: "India", Role: model.RoleWicketkeeper},
		{ID: "joe-root", FullName: "Joe Root", Country: "England", Role: model.RoleBatsman},
	} {
		player := p
		require.NoError(t, env.players.Upsert(ctx, &player))
	}

	for _, p := range []model.Puzzle{
		{
			ID:       1,
			TargetID: "virat-kohli",
			Teams:    []string{"India", "Australia"},
			Venue:    "Wankhede Stadium",
			Winner:   "India",
			Participants: []model.Performance{
				{PlayerID: "virat-kohli", Name: "Virat Kohli", Team: "India", Role: model.RoleBatsman, Runs: 82, Played: true},
				{PlayerID: "jasprit-bumrah", Name: "Jasprit Bumrah", Team: "India", Role: model.RoleBowler, Runs: 8, Wickets: 2, Played: true},
				{PlayerID: "steve-smith", Name: "Steve Smith", Team: "Australia", Role: model.RoleBatsman, Runs: 71, Played: true},
				{PlayerID: "ms-dhoni", Name: "MS Dhoni", Team: "India", Role: model.RoleWicketkeeper, Runs: 44, Played: true},
			},
		},
		{
			ID:       2,
			TargetID: "jasprit-bumrah",
			Teams:    []string{"India", "England"},
			Venue:    "Eden Gardens",
			Winner:   "India",
			Participants: []model.Performance{
				{PlayerID: "jasprit-bumrah", Name: "Jasprit Bumrah", Team: "India", Role: model.RoleBowler, Runs: 3, Wickets: 5, Played: true},
				{PlayerID: "virat-kohli", Name: "Virat Kohli", Team: "India", Role: model.RoleBatsman, Runs: 12, Played: true},
				{PlayerID: "ms-dhoni", Name: "MS Dhoni", Team: "India", Role: model.RoleWicketkeeper, Runs: 30, Played: true},
			},
		},
		{
			ID:       3,
			TargetID: "steve-smith",
			Teams:    []string{"Australia", "England"},
			Venue:    "Lord's",
			Winner:   "Australia",
			Participants: []model.Performance{
				{PlayerID: "steve-smith", Name: "Steve Smith", Team: "Australia", Role: model.RoleBatsman, Runs: 103, Played: true},
				{PlayerID: "ms-dhoni", Name: "MS Dhoni", Team: "Australia", Role: model.RoleWicketkeeper, Runs: 12, Played: true},
			},
		},
	} {
		puzzle := p
		require.NoError(t, env.puzzles.Upsert(ctx, &puzzle))
	}

	env.puzzleSvc = NewPuzzleService(env.puzzles, env.players, env.schedule, cfg)
	env.gameSvc = NewGameService(env.sessions, env.players, env.sessCache, env.puzzleSvc, cfg, env.sink)
	env.profSvc = NewProfileService(env.board, env.profiles)
	env.lbSvc = NewLeaderboardService(env.board, env.sessions, env.standings, env.profSvc, env.sink)
	env.lbSvc.SetBroadcaster(env.cast)
	return env
}

// day returns noon on the nth canonical day after the epoch.
func (e *testEnv) day(n int) time.Time {
	return e.cfg.Epoch.AddDate(0, 0, n).Add(12 * time.Hour)
}
