// Package storage provides Badger-backed persistent storage for board
// snapshots and user preferences (spec.md §6 "Persistence": an opaque
// on-disk snapshot format, not part of the contract, may be omitted — kept
// here since a snapshot written to disk every ply is useful for
// post-mortem debugging of a game).
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/NmadeleiDev/gomoku/internal/board"
)

// Storage key prefixes/names.
const (
	keyPreferences    = "preferences"
	keyStats          = "stats"
	keyFirstLaunch    = "first_launch"
	snapshotKeyPrefix = "snapshot:"
)

// GameMode records which player kinds faced off.
type GameMode int

const (
	ModeHumanVsHuman GameMode = iota
	ModeHumanVsComputer
	ModeComputerVsComputer
)

// Difficulty is a named DEPTH preset (spec.md §6's DEPTH knob).
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Depth returns the DEPTH value a Difficulty preset maps to.
func (d Difficulty) Depth() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 5
	default:
		return 3
	}
}

// PlayerColor records which color the human player chose.
type PlayerColor int

const (
	ColorBlack PlayerColor = iota
	ColorWhite
)

// UserPreferences stores user settings between runs.
type UserPreferences struct {
	Username    string      `json:"username"`
	Difficulty  Difficulty  `json:"difficulty"`
	GameMode    GameMode    `json:"game_mode"`
	PlayerColor PlayerColor `json:"player_color"`
	LastPlayed  time.Time   `json:"last_played"`
}

// DefaultPreferences returns default user preferences.
func DefaultPreferences() *UserPreferences {
	return &UserPreferences{
		Username:    "Player",
		Difficulty:  DifficultyMedium,
		GameMode:    ModeHumanVsComputer,
		PlayerColor: ColorBlack,
		LastPlayed:  time.Now(),
	}
}

// GameStats stores cumulative game statistics.
type GameStats struct {
	GamesPlayed    int            `json:"games_played"`
	Wins           int            `json:"wins"`
	Losses         int            `json:"losses"`
	WinsByMode     map[string]int `json:"wins_by_mode"`
	WinsByDiff     map[string]int `json:"wins_by_difficulty"`
	TotalPlayTime  time.Duration  `json:"total_play_time"`
	LongestWinStrk int            `json:"longest_win_streak"`
	CurrentStreak  int            `json:"current_streak"`
}

// NewGameStats returns empty game statistics.
func NewGameStats() *GameStats {
	return &GameStats{
		WinsByMode: make(map[string]int),
		WinsByDiff: make(map[string]int),
	}
}

// GameResult represents the result of a completed game, for RecordGame.
type GameResult struct {
	Won        bool
	Mode       GameMode
	Difficulty Difficulty
	Duration   time.Duration
}

// BoardSnapshot is the serializable form of a board.Board at one ply,
// dumped after every move (spec.md §6; grounded on the original's
// joblib.dump(self.board, f"./logs/board_at_move_{idx}.joblib")).
type BoardSnapshot struct {
	MoveIdx  int           `json:"move_idx"`
	Grid     [19][19]int8  `json:"grid"`
	Captures [2]int        `json:"captures"`
	Hash     string        `json:"hash"`
}

// SnapshotFromBoard builds a BoardSnapshot from the live board state.
func SnapshotFromBoard(b *board.Board) BoardSnapshot {
	var snap BoardSnapshot
	snap.MoveIdx = b.MoveIdx()
	for x := 0; x < board.Size; x++ {
		for y := 0; y < board.Size; y++ {
			snap.Grid[x][y] = int8(b.At(x, y))
		}
	}
	snap.Captures = [2]int{b.Captures(board.Black), b.Captures(board.White)}
	snap.Hash = b.Hash().String()
	return snap
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if absent) the on-disk database under the
// platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch.
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first-launch setup is done.
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *UserPreferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if unset.
func (s *Storage) LoadPreferences() (*UserPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves game statistics.
func (s *Storage) SaveStats(stats *GameStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads game statistics, returning empty stats if unset.
func (s *Storage) LoadStats() (*GameStats, error) {
	stats := NewGameStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordGame records a completed game and updates statistics.
func (s *Storage) RecordGame(result GameResult) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.GamesPlayed++
	stats.TotalPlayTime += result.Duration

	modeKey := "hvh"
	switch result.Mode {
	case ModeHumanVsComputer:
		modeKey = "hvc"
	case ModeComputerVsComputer:
		modeKey = "cvc"
	}

	diffKey := "easy"
	switch result.Difficulty {
	case DifficultyMedium:
		diffKey = "medium"
	case DifficultyHard:
		diffKey = "hard"
	}

	if result.Won {
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestWinStrk {
			stats.LongestWinStrk = stats.CurrentStreak
		}
		stats.WinsByMode[modeKey]++
		stats.WinsByDiff[diffKey]++
	} else {
		stats.Losses++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}

// GetWinRate returns the win rate as a percentage (0-100).
func (s *GameStats) GetWinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.GamesPlayed) * 100
}

// SaveSnapshot persists the board state after a ply, keyed by move index
// (spec.md §6's "opaque on-disk format... for debugging").
func (s *Storage) SaveSnapshot(b *board.Board) error {
	snap := SnapshotFromBoard(b)
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("%s%06d", snapshotKeyPrefix, snap.MoveIdx)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// LoadSnapshot loads the board snapshot recorded at moveIdx.
func (s *Storage) LoadSnapshot(moveIdx int) (*BoardSnapshot, error) {
	var snap BoardSnapshot
	key := fmt.Sprintf("%s%06d", snapshotKeyPrefix, moveIdx)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
