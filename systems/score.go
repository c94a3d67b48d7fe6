package systems

import (
	"time"

	"github.com/lixenwraith/whack/constants"
)

// ComboBonus returns the bonus level earned at the given combo
func ComboBonus(combo int) int {
	if combo < 0 {
		return 0
	}
	return combo / constants.ComboStep
}

// StrikePoints returns the points for a strike that brought the combo to combo
func StrikePoints(combo int) int {
	return constants.BaseStrikePoints + ComboBonus(combo)*constants.ComboBonusPoints
}

// IsComboFlash reports whether the combo lights the combo indicator
func IsComboFlash(combo int) bool {
	return combo >= constants.ComboFlashThreshold
}

// MoleDuration returns how long a mole spawned with timeRemaining seconds left stays up
// Linear ramp from InitialMoleDuration, losing MoleDurationRamp over a full round, floored at MinMoleDuration
func MoleDuration(timeRemaining int) time.Duration {
	if timeRemaining < 0 {
		timeRemaining = 0
	}
	if timeRemaining > constants.RoundDurationSeconds {
		timeRemaining = constants.RoundDurationSeconds
	}
	elapsed := constants.RoundDurationSeconds - timeRemaining

	progress := float64(elapsed) / float64(constants.RoundDurationSeconds)
	d := time.Duration(float64(constants.InitialMoleDuration) - progress*float64(constants.MoleDurationRamp))
	if d < constants.MinMoleDuration {
		return constants.MinMoleDuration
	}
	return d
}
