package normalize

import (
	"testing"

	"github.com/BayHyn/battlefield-tool/internal/tables"
)

func TestPlayerFromGT(t *testing.T) {
	raw := map[string]any{
		"userName":      "SomePlayer",
		"rank":          140.0,
		"secondsPlayed": 7200.0,
		"kills":         5230.0,
		"killDeath":     2.1,
		"headshots":     "14.2%",
		"revives":       33.0,
	}
	p := PlayerFromGT(raw)
	if p.UserName != "SomePlayer" {
		t.Errorf("UserName = %q", p.UserName)
	}
	if p.HoursPlayed != "2.0" {
		t.Errorf("HoursPlayed = %q, want 2.0", p.HoursPlayed)
	}
	if p.Kills != 5230 {
		t.Errorf("Kills = %d", p.Kills)
	}
	if p.Rank != "140" {
		t.Errorf("Rank = %q", p.Rank)
	}
	if p.Revives != "33" {
		t.Errorf("Revives = %q", p.Revives)
	}
	if p.Avatar != tables.DefaultAvatar {
		t.Errorf("missing avatar should fall back to default, got %q", p.Avatar)
	}
}

func TestPlayerFromGTEmptyPayload(t *testing.T) {
	p := PlayerFromGT(map[string]any{})
	if p.UserName != "--" || p.Kills != 0 || p.HoursPlayed != "0.0" || p.Wins != "0" {
		t.Errorf("empty payload should map to placeholders, got %+v", p)
	}
}

func TestWeaponFromGTSuppressesTimeForBF4(t *testing.T) {
	raw := map[string]any{
		"weaponName":     "M4",
		"kills":          120.0,
		"killsPerMinute": 0.8,
		"timeEquipped":   9000.0,
	}
	w := WeaponFromGT(raw, "bf4")
	if w.TimeSpent != "0" {
		t.Errorf("bf4 TimeSpent = %q, want 0", w.TimeSpent)
	}
	if w.Kills != 120 {
		t.Errorf("Kills = %d, want 120", w.Kills)
	}
	if w.KillsPerMinute != "0.8" {
		t.Errorf("KillsPerMinute = %q, want 0.8", w.KillsPerMinute)
	}
	if w.Name != "M4" {
		t.Errorf("Name = %q", w.Name)
	}

	w = WeaponFromGT(raw, "bf1")
	if w.TimeSpent != "2.5" {
		t.Errorf("bf1 TimeSpent = %q, want 2.5", w.TimeSpent)
	}
}

func TestWeaponFromGTEmptyPayload(t *testing.T) {
	w := WeaponFromGT(map[string]any{}, "bfv")
	if w.Name != "--" || w.Kills != 0 || w.TimeSpent != "0.0" || w.Category != "--" {
		t.Errorf("empty payload should map to placeholders, got %+v", w)
	}
}

func TestVehicleFromGTImageRepair(t *testing.T) {
	raw := map[string]any{
		"vehicleName": "SU-50",
		"image":       "https://example.invalid/broken.png",
		"kills":       9.0,
		"timeIn":      3600.0,
	}
	v := VehicleFromGT(raw)
	want, _ := tables.RepairedImage("su-50")
	if v.Image != want {
		t.Errorf("Image = %q, want repaired %q", v.Image, want)
	}
	if v.TimeSpent != "1.0" {
		t.Errorf("TimeSpent = %q", v.TimeSpent)
	}

	raw["vehicleName"] = "M1 Abrams"
	if v := VehicleFromGT(raw); v.Image != "https://example.invalid/broken.png" {
		t.Errorf("unlisted vehicle should keep upstream image, got %q", v.Image)
	}
}

func TestServerFromGTLocalizesMapAndMode(t *testing.T) {
	raw := map[string]any{
		"prefix":     "[XP] 24/7 Metro",
		"url":        "https://example.invalid/banner.png",
		"currentMap": "Siege of Shanghai",
		"mode":       "Conquest Large",
		"serverInfo": "62/64",
		"country":    "JP",
	}
	s := ServerFromGT(raw)
	if s.CurrentMap != " 上海之围 " {
		t.Errorf("CurrentMap = %q", s.CurrentMap)
	}
	if s.Mode != "大型征服" {
		t.Errorf("Mode = %q", s.Mode)
	}
	if s.ServerInfo != "62/64" {
		t.Errorf("ServerInfo = %q", s.ServerInfo)
	}
}
