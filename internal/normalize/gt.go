package normalize

import (
	"strconv"
	"strings"

	"github.com/BayHyn/battlefield-tool/internal/models"
	"github.com/BayHyn/battlefield-tool/internal/tables"
)

func fieldString(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return def
	}
	return toString(v, def)
}

func fieldFloat(m map[string]any, key string) float64 {
	v, ok := m[key]
	if !ok {
		return 0
	}
	return toFloat(v, 0)
}

func fieldInt(m map[string]any, key string) int {
	v, ok := m[key]
	if !ok {
		return 0
	}
	return toInt(v, 0)
}

// PlayerFromGT maps an aggregator stats payload. Hours derive from the raw
// secondsPlayed field; a missing avatar falls back to the stock one.
func PlayerFromGT(raw map[string]any) *models.PlayerStats {
	avatar := fieldString(raw, "avatar", "")
	if avatar == "" {
		avatar = tables.DefaultAvatar
	}
	return &models.PlayerStats{
		Avatar:         avatar,
		UserName:       fieldString(raw, "userName", "--"),
		Rank:           fieldString(raw, "rank", "0"),
		RankImg:        fieldString(raw, "rankImg", ""),
		HoursPlayed:    FormatHours(fieldFloat(raw, "secondsPlayed")),
		Kills:          fieldInt(raw, "kills"),
		KillDeath:      fieldString(raw, "killDeath", "0"),
		KillsPerMinute: fieldString(raw, "killsPerMinute", "0"),
		HeadshotRate:   fieldString(raw, "headshots", "0"),
		Accuracy:       fieldString(raw, "accuracy", "0"),
		Revives:        strconv.Itoa(fieldInt(raw, "revives")),
		Headshots:      fieldString(raw, "headShots", "0"),
		LongestKill:    strconv.Itoa(fieldInt(raw, "longestHeadShot")),
		Wins:           fieldString(raw, "wins", "0"),
		HighestStreak:  fieldString(raw, "highestKillStreak", "0"),
	}
}

// WeaponFromGT maps one aggregator weapon record. Equipped time is not shown
// for bf4, where the upstream counter is unreliable, so it is forced to "0".
func WeaponFromGT(raw map[string]any, game string) models.Weapon {
	timeSpent := "0"
	if game != "bf4" {
		timeSpent = FormatHours(fieldFloat(raw, "timeEquipped"))
	}
	return models.Weapon{
		Name:           itemName(raw, "weaponName"),
		Image:          fieldString(raw, "image", ""),
		Category:       tables.WeaponCategory(fieldString(raw, "type", "--")),
		Kills:          fieldInt(raw, "kills"),
		KillsPerMinute: FormatRate(fieldFloat(raw, "killsPerMinute")),
		Accuracy:       fieldString(raw, "accuracy", "0"),
		HeadshotRate:   fieldString(raw, "headshots", "0"),
		HeadshotKills:  fieldString(raw, "headshotKills", "0"),
		ShotsFired:     fieldString(raw, "shotsFired", "0"),
		ShotsHit:       fieldString(raw, "shotsHit", "0"),
		TimeSpent:      timeSpent,
	}
}

// VehicleFromGT maps one aggregator vehicle record, repairing known-broken
// image URLs by lower-cased vehicle name.
func VehicleFromGT(raw map[string]any) models.Vehicle {
	name := itemName(raw, "vehicleName")
	image := fieldString(raw, "image", "")
	if repaired, ok := tables.RepairedImage(strings.ToLower(name)); ok {
		image = repaired
	}
	return models.Vehicle{
		Name:           name,
		Image:          image,
		Category:       tables.VehicleCategory(fieldString(raw, "type", "--")),
		Kills:          fieldInt(raw, "kills"),
		KillsPerMinute: FormatRate(fieldFloat(raw, "killsPerMinute")),
		Destroyed:      fieldString(raw, "destroyed", "0"),
		TimeSpent:      FormatHours(fieldFloat(raw, "timeIn")),
	}
}

// ServerFromGT maps one server-list record, localizing map and mode names.
func ServerFromGT(raw map[string]any) models.Server {
	return models.Server{
		Name:       fieldString(raw, "prefix", "--"),
		Image:      fieldString(raw, "url", ""),
		CurrentMap: tables.MapName(fieldString(raw, "currentMap", "--")),
		Mode:       tables.GameMode(strings.ToLower(fieldString(raw, "mode", "--"))),
		ServerInfo: fieldString(raw, "serverInfo", "0/0"),
		Country:    fieldString(raw, "country", "--"),
	}
}

// itemName prefers the schema-specific name key and falls back to the plain
// "name" field some payload revisions use.
func itemName(raw map[string]any, key string) string {
	if n := fieldString(raw, key, ""); n != "" {
		return n
	}
	return fieldString(raw, "name", "--")
}
