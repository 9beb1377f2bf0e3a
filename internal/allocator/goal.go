// internal/allocator/goal.go
package allocator

import "math"

const (
	DefaultWinNumber = 1250

	// ContactsPerVote covers people who won't answer, aren't home, or won't vote for you.
	ContactsPerVote = 5

	targetVoterRatio = 1.5
)

// ContactGoal is the number of voter contacts needed for a win number.
func ContactGoal(winNumber int) int {
	if winNumber < 0 {
		return 0
	}
	return winNumber * ContactsPerVote
}

// TargetVoters is the size of the voter pool segments should cover.
func TargetVoters(winNumber int) int {
	if winNumber < 0 {
		return 0
	}
	return int(math.Ceil(float64(winNumber) * targetVoterRatio))
}
