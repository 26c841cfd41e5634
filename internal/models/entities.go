// Package models defines the canonical report entities. Both upstream schemas
// (the gametools aggregator and the tracker backend) map into these types, so
// templates and the text projection never see schema differences.
package models

// PlayerStats is the career summary card. Fields the source schema does not
// carry stay at their zero value; string fields default to "--" or "0" at
// mapping time so templates render something sensible.
type PlayerStats struct {
	Avatar         string `json:"avatar"`
	UserName       string `json:"user_name"`
	Rank           string `json:"rank"`
	RankImg        string `json:"rank_img,omitempty"`
	HoursPlayed    string `json:"hours_played"`
	Kills          int    `json:"kills"`
	KillDeath      string `json:"kill_death"`
	KillsPerMinute string `json:"kills_per_minute"`
	HeadshotRate   string `json:"headshot_rate"`
	Accuracy       string `json:"accuracy,omitempty"`
	Revives        string `json:"revives"`
	Headshots      string `json:"headshots,omitempty"`
	LongestKill    string `json:"longest_headshot,omitempty"`
	Wins           string `json:"wins"`
	HighestStreak  string `json:"highest_kill_streak,omitempty"`

	// Tracker-only extras.
	DmgPerMin         string  `json:"dmg_per_min,omitempty"`
	HumanKD           string  `json:"human_kd,omitempty"`
	KillsPercentile   float64 `json:"kills_percentile,omitempty"`
	WinsPercentile    float64 `json:"wins_percentile,omitempty"`
	Assists           string  `json:"assists,omitempty"`
	Deaths            string  `json:"deaths,omitempty"`
	KillsPerMatch     string  `json:"kills_per_match,omitempty"`
	WLPercentage      string  `json:"wl_percentage,omitempty"`
	Losses            string  `json:"losses,omitempty"`
	DamageDealt       string  `json:"damage_dealt,omitempty"`
	DamagePerMatch    string  `json:"damage_per_match,omitempty"`
	VehiclesDestroyed string  `json:"vehicles_destroyed,omitempty"`
}

type Weapon struct {
	Name           string `json:"name"`
	Image          string `json:"image,omitempty"`
	Category       string `json:"category"`
	Kills          int    `json:"kills"`
	KillsPerMinute string `json:"kills_per_minute"`
	Accuracy       string `json:"accuracy"`
	HeadshotRate   string `json:"headshot_rate"`
	HeadshotKills  string `json:"headshot_kills"`
	ShotsFired     string `json:"shots_fired"`
	ShotsHit       string `json:"shots_hit"`
	TimeSpent      string `json:"time_spent"` // hours, one decimal

	DmgPerMin    string `json:"dmg_per_min,omitempty"`
	DamageDealt  string `json:"damage_dealt,omitempty"`
	ScopedKills  string `json:"scoped_kills,omitempty"`
	HipfireKills string `json:"hipfire_kills,omitempty"`
	MultiKills   string `json:"multi_kills,omitempty"`
	BodyKills    string `json:"body_kills,omitempty"`
	Deployments  string `json:"deployments,omitempty"`
}

type Vehicle struct {
	Name           string `json:"name"`
	Image          string `json:"image,omitempty"`
	Category       string `json:"category"`
	Kills          int    `json:"kills"`
	KillsPerMinute string `json:"kills_per_minute"`
	Destroyed      string `json:"destroyed"`
	TimeSpent      string `json:"time_spent"`

	DamageDealt      string `json:"damage_dealt,omitempty"`
	DamageDealtTo    string `json:"damage_dealt_to,omitempty"`
	DestroyedWith    string `json:"destroyed_with,omitempty"`
	PassengerAssists string `json:"passenger_assists,omitempty"`
	DriverAssists    string `json:"driver_assists,omitempty"`
	RoadKills        string `json:"road_kills,omitempty"`
	Assists          string `json:"assists,omitempty"`
	MultiKills       string `json:"multi_kills,omitempty"`
	DistanceTraveled string `json:"distance_traveled,omitempty"`
	CallIns          string `json:"call_ins,omitempty"`
	Deployments      string `json:"deployments,omitempty"`
	DmgPerMin        string `json:"dmg_per_min,omitempty"`
}

// Soldier is a 2042 specialist.
type Soldier struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	ImageURL       string `json:"image_url"`
	Kills          int    `json:"kills"`
	KDRatio        string `json:"kd_ratio"`
	KillsPerMinute string `json:"kills_per_minute"`
	Assists        string `json:"assists"`
	TimePlayed     string `json:"time_played"`
	Deployments    string `json:"deployments"`
	Revives        string `json:"revives"`
	Deaths         string `json:"deaths"`
}

type Server struct {
	Name       string `json:"name"`
	Image      string `json:"image"`
	CurrentMap string `json:"current_map"`
	Mode       string `json:"mode"`
	ServerInfo string `json:"server_info"` // "players/slots"
	Country    string `json:"country"`
}
