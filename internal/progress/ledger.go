package progress

// levelTiers is ordered ascending by threshold. Level derivation keeps the
// last tier whose threshold is at or below the current XP total.
var levelTiers = []struct {
	Name      string
	Threshold int
}{
	{LevelSeed, 0},
	{LevelShepherd, 10},
	{LevelDisciple, 25},
	{LevelWarrior, 50},
	{LevelServantLeader, 100},
}

// AwardXP adds a non-negative amount to the record's XP total, counts the
// call as one action, and re-derives the level. Crossing into a new level
// grants the level name as a badge (levels and badges share a namespace;
// Seed is never a badge).
func AwardXP(r *Record, amount int) {
	r.XP += amount
	r.TotalActions++

	old := r.Level
	for _, tier := range levelTiers {
		if r.XP >= tier.Threshold {
			r.Level = tier.Name
		}
	}

	if r.Level != old && r.Level != LevelSeed && !r.HasBadge(r.Level) {
		r.Badges = append(r.Badges, r.Level)
	}
}

// LevelForXP returns the level a given XP total derives to.
func LevelForXP(xp int) string {
	level := LevelSeed
	for _, tier := range levelTiers {
		if xp >= tier.Threshold {
			level = tier.Name
		}
	}
	return level
}

// MaxLevelLabel is reported as the next level once the top tier is reached.
const MaxLevelLabel = "Max Level Reached"

// LevelProgress reports the next level name and the percentage of the way
// from the current tier's threshold to the next. At the top tier the next
// level is MaxLevelLabel and progress is pinned at 100.
func LevelProgress(xp int) (next string, percentage float64) {
	current := LevelForXP(xp)
	for i, tier := range levelTiers {
		if tier.Name != current {
			continue
		}
		if i == len(levelTiers)-1 {
			return MaxLevelLabel, 100
		}
		nextTier := levelTiers[i+1]
		span := float64(nextTier.Threshold - tier.Threshold)
		pct := float64(xp-tier.Threshold) / span * 100
		if pct > 100 {
			pct = 100
		}
		return nextTier.Name, pct
	}
	return MaxLevelLabel, 100
}
