package manager

import "sort"

// StateManager keeps the best score and the score history for the lifetime
// of the process. Nothing is written to disk.
type StateManager struct {
	highScore    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]int, 0),
	}
}

// RecordSession stores a finished session's score and reports whether it set
// a new best.
func (sm *StateManager) RecordSession(score int) bool {
	sm.scoreHistory = append(sm.scoreHistory, score)
	return sm.UpdateScore(score)
}

// UpdateScore raises the best score if score beats it.
func (sm *StateManager) UpdateScore(score int) bool {
	if score > sm.highScore {
		sm.highScore = score
		return true
	}
	return false
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	history := make([]int, len(sm.scoreHistory))
	copy(history, sm.scoreHistory)
	return history
}

func (sm *StateManager) GamesPlayed() int {
	return len(sm.scoreHistory)
}

// GetAverageScore returns the mean score over every recorded session.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	total := 0
	for _, score := range sm.scoreHistory {
		total += score
	}
	return float64(total) / float64(len(sm.scoreHistory))
}

// GetMedianScore returns the median score over every recorded session.
func (sm *StateManager) GetMedianScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	scores := sm.GetScoreHistory()
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}
