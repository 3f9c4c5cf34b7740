package stats

// Tier is the motivational band of a completion rate.
type Tier string

const (
	TierFirstStep Tier = "first_step"
	TierMomentum  Tier = "momentum"
	TierHalfway   Tier = "halfway"
	TierCrushing  Tier = "crushing"
	TierChampion  Tier = "champion"
)

// TierFor maps a completion rate in percent to its tier.
func TierFor(rate float64) Tier {
	switch {
	case rate >= 100:
		return TierChampion
	case rate >= 75:
		return TierCrushing
	case rate >= 50:
		return TierHalfway
	case rate >= 25:
		return TierMomentum
	default:
		return TierFirstStep
	}
}

func (t Tier) String() string {
	return string(t)
}
