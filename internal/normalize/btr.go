package normalize

import (
	"github.com/BayHyn/battlefield-tool/internal/models"
	"github.com/BayHyn/battlefield-tool/internal/tables"
)

// statBlock returns the per-field stat container of a tracker record, an
// empty map when absent so every lookup below degrades to its default.
func statBlock(rec map[string]any) map[string]any {
	if stats, ok := rec["stats"].(map[string]any); ok {
		return stats
	}
	return map[string]any{}
}

// firstSegment returns segments[0] of a tracker stat payload, or an empty
// map when the list is empty or holds something unexpected.
func firstSegment(raw map[string]any) map[string]any {
	segs, ok := raw["segments"].([]any)
	if !ok || len(segs) == 0 {
		return map[string]any{}
	}
	if seg, ok := segs[0].(map[string]any); ok {
		return seg
	}
	return map[string]any{}
}

func statDisplay(stats map[string]any, field, def string) string {
	return pathString(stats, field+".displayValue", def)
}

func statValue(stats map[string]any, field string) float64 {
	return pathNumber(stats, field+".value")
}

func statValueString(stats map[string]any, field, def string) string {
	return pathString(stats, field+".value", def)
}

func statRank(stats map[string]any, field string) float64 {
	v, ok := resolvePath(stats, field+".percentile")
	if !ok {
		return 0
	}
	return InvertPercentile(toFloat(v, 100))
}

// PlayerFromBTR maps a tracker stat payload. Percentiles are stored inverted
// so a bigger number means a better rank.
func PlayerFromBTR(raw map[string]any) *models.PlayerStats {
	stats := statBlock(firstSegment(raw))
	avatar := fieldString(raw, "avatar", "")
	if avatar == "" {
		avatar = tables.DefaultAvatar
	}
	return &models.PlayerStats{
		Avatar:         avatar,
		UserName:       pathString(raw, "platformInfo.platformUserHandle", "--"),
		Rank:           statDisplay(stats, "level", "0"),
		HoursPlayed:    statDisplay(stats, "timePlayed", "--"),
		Kills:          int(statValue(stats, "kills")),
		KillDeath:      statDisplay(stats, "kdRatio", "--"),
		KillsPerMinute: statDisplay(stats, "killsPerMinute", "--"),
		HeadshotRate:   statDisplay(stats, "headshotPercentage", "--"),
		Revives:        statValueString(stats, "revives", "0"),
		Wins:           statDisplay(stats, "wins", "0"),

		DmgPerMin:         statDisplay(stats, "dmgPerMin", "--"),
		HumanKD:           statDisplay(stats, "humanKdRatio", "--"),
		KillsPercentile:   statRank(stats, "kills"),
		WinsPercentile:    statRank(stats, "wins"),
		Assists:           statValueString(stats, "assists", "0"),
		Deaths:            statValueString(stats, "deaths", "0"),
		KillsPerMatch:     statDisplay(stats, "killsPerMatch", "--"),
		WLPercentage:      statDisplay(stats, "wlPercentage", "--"),
		Losses:            statDisplay(stats, "losses", "0"),
		DamageDealt:       statDisplay(stats, "damageDealt", "--"),
		DamagePerMatch:    statValueString(stats, "damagePerMatch", "--"),
		VehiclesDestroyed: statDisplay(stats, "vehiclesDestroyed", "0"),
	}
}

// WeaponFromBTR maps one tracker weapon record.
func WeaponFromBTR(rec map[string]any) models.Weapon {
	stats := statBlock(rec)
	return models.Weapon{
		Name:           pathString(rec, "metadata.name", "--"),
		Category:       tables.WeaponCategory(pathString(rec, "metadata.category", "--")),
		Kills:          int(statValue(stats, "kills")),
		KillsPerMinute: statDisplay(stats, "killsPerMinute", "--"),
		Accuracy:       statDisplay(stats, "shotsAccuracy", "--"),
		HeadshotRate:   statDisplay(stats, "headshotPercentage", "--"),
		HeadshotKills:  statValueString(stats, "headshotKills", "--"),
		ShotsFired:     statDisplay(stats, "shotsFired", "--"),
		ShotsHit:       statDisplay(stats, "shotsHit", "--"),
		TimeSpent:      FormatHours(statValue(stats, "timePlayed")),
		DmgPerMin:      statDisplay(stats, "dmgPerMin", "--"),
		DamageDealt:    statDisplay(stats, "damageDealt", "--"),
		ScopedKills:    statDisplay(stats, "scopedKills", "--"),
		HipfireKills:   statValueString(stats, "hipfireKills", "--"),
		MultiKills:     statDisplay(stats, "multiKills", "--"),
		BodyKills:      statDisplay(stats, "bodyKills", "--"),
		Deployments:    statDisplay(stats, "deployments", "--"),
	}
}

// VehicleFromBTR maps one tracker vehicle record, localizing name and
// category through the fixed tables.
func VehicleFromBTR(rec map[string]any) models.Vehicle {
	stats := statBlock(rec)
	return models.Vehicle{
		Name:             tables.VehicleName(pathString(rec, "metadata.name", "--")),
		Category:         tables.VehicleCategory(pathString(rec, "metadata.category", "--")),
		Kills:            int(statValue(stats, "kills")),
		KillsPerMinute:   statDisplay(stats, "killsPerMinute", "--"),
		TimeSpent:        FormatHours(statValue(stats, "timePlayed")),
		DamageDealt:      statDisplay(stats, "damageDealt", "--"),
		DamageDealtTo:    statDisplay(stats, "damageDealtTo", "--"),
		Destroyed:        statDisplay(stats, "destroyed", "--"),
		DestroyedWith:    statDisplay(stats, "destroyedWith", "--"),
		PassengerAssists: statDisplay(stats, "passengerAssists", "--"),
		DriverAssists:    statDisplay(stats, "driverAssists", "--"),
		RoadKills:        statDisplay(stats, "roadKills", "--"),
		Assists:          statDisplay(stats, "assists", "--"),
		MultiKills:       statDisplay(stats, "multiKills", "--"),
		DistanceTraveled: statDisplay(stats, "distanceTraveled", "--"),
		CallIns:          statDisplay(stats, "callIns", "--"),
		Deployments:      statDisplay(stats, "deployments", "--"),
		DmgPerMin:        statDisplay(stats, "dmgPerMin", "--"),
	}
}

// SoldierFromBTR maps one 2042 specialist record.
func SoldierFromBTR(rec map[string]any) models.Soldier {
	stats := statBlock(rec)
	return models.Soldier{
		Name:           tables.SoldierName(pathString(rec, "metadata.name", "--")),
		Category:       tables.SoldierCategory(pathString(rec, "metadata.category", "--")),
		ImageURL:       pathString(rec, "metadata.imageUrl", "--"),
		Kills:          int(statValue(stats, "kills")),
		KDRatio:        statDisplay(stats, "kdRatio", "--"),
		KillsPerMinute: statDisplay(stats, "killsPerMinute", "--"),
		Assists:        statDisplay(stats, "assists", "--"),
		TimePlayed:     FormatHours(statValue(stats, "timePlayed")),
		Deployments:    statDisplay(stats, "deployments", "--"),
		Revives:        statDisplay(stats, "revives", "--"),
		Deaths:         statDisplay(stats, "deaths", "--"),
	}
}
