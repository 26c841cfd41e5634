package normalize

import (
	"fmt"
	"strings"

	"github.com/BayHyn/battlefield-tool/internal/models"
)

// PlayerText is the one-sentence career summary handed to a language model.
func PlayerText(p *models.PlayerStats) string {
	return fmt.Sprintf(
		"用户%s生涯总共击杀%d名敌军，击杀死亡比值(K/D):%s，平均每分钟击杀(KPM):%s，胜场:%s，急救了%s位士兵，爆头率：%s，总游玩时间%s小时。",
		p.UserName, p.Kills, p.KillDeath, p.KillsPerMinute, p.Wins, p.Revives, p.HeadshotRate, p.HoursPlayed)
}

// WeaponText summarizes one weapon in a fixed sentence.
func WeaponText(w *models.Weapon) string {
	return fmt.Sprintf(
		"使用%s%s共%s小时，总共击杀了%d名敌军，该武器平均每分钟击杀%s，爆头率%s，命中率%s。",
		w.Category, w.Name, w.TimeSpent, w.Kills, w.KillsPerMinute, w.HeadshotRate, w.Accuracy)
}

// VehicleText summarizes one vehicle in a fixed sentence.
func VehicleText(v *models.Vehicle) string {
	return fmt.Sprintf(
		"使用%s%s共%s小时，总共击杀了%d名敌军，该载具平均每分钟击杀%s，摧毁了%s辆载具。",
		v.Category, v.Name, v.TimeSpent, v.Kills, v.KillsPerMinute, v.Destroyed)
}

// SoldierText summarizes one specialist in a fixed sentence.
func SoldierText(s *models.Soldier) string {
	return fmt.Sprintf(
		"最擅长使用%s兵专家%s，%s小时中击杀了%d名敌军，平均每分钟击杀%s，击杀死亡比值%s。",
		s.Category, s.Name, s.TimePlayed, s.Kills, s.KillsPerMinute, s.KDRatio)
}

// BuildLLMText projects a bundle to text for natural-language consumption:
// the player summary, then at most two top weapons and two top vehicles.
func BuildLLMText(bundle *models.ReportBundle) string {
	var b strings.Builder
	if bundle.Player != nil {
		b.WriteString(fmt.Sprintf("%s中", bundle.Game))
		b.WriteString(PlayerText(bundle.Player))
	}
	for i := range bundle.Weapons {
		if i == 2 {
			break
		}
		b.WriteString(WeaponText(&bundle.Weapons[i]))
	}
	for i := range bundle.Vehicles {
		if i == 2 {
			break
		}
		b.WriteString(VehicleText(&bundle.Vehicles[i]))
	}
	return b.String()
}
