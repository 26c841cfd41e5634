// Package tables holds the static lookup data used when normalizing upstream
// payloads: localized labels for categories, vehicles, soldiers, game modes
// and maps, plus per-game artwork. All maps are read-only after init; lookups
// fall back to the input value when a code is unknown.
package tables

// DefaultAvatar is used when the upstream payload has no avatar URL.
const DefaultAvatar = "https://s21.ax1x.com/2025/07/16/pV1Ox6e.jpg"

var weaponCategories = map[string]string{
	"LMG":                   "机枪",
	"Assault Rifles":        "突击步枪",
	"PDW":                   "冲锋枪",
	"DMR":                   "精确射手步枪",
	"Bolt Action":           "狙击步枪",
	"Lever-Action Carbines": "多功能",
}

var vehicleCategories = map[string]string{
	"Land":       "地载",
	"Amphibious": "两栖载具",
	"In-World":   "地图载具",
	"Plane":      "空载",
	"Helicopter": "旋翼",
	"Stationary": "定点武器",
}

// Keys are kept exactly as the tracker sends them, trailing spaces included.
var vehicleNames = map[string]string{
	"LATV4 Recon ":            "轻型侦察车",
	"M5C  ":                   "博尔特",
	"EBAA Wildcat ":           "小野猫 ",
	"LCAA Hovercraft":         "气垫船",
	"MAV ":                    "MAV",
	"F-35E Panther ":          "F-35E",
	"SU-57 FELON":             "SU-57",
	"MV38-Condor":             "秃鹰",
	"MD540 Nightbird ":        "夜莺",
	"AH-64GX Apache Warchief": "阿帕奇",
	"KA-52 Alligator":         "KA-52",
	"Mi-240 Super Hind ":      "超级雌鹿",
	"M10 Wolverine":           "狼獾",
	"M4 Sherman":              "谢尔曼",
	"9K22 Tunguska-M":         "通古斯卡",
	"M1161 ITV":               "咆哮者",
	"Mi-28 Havoc":             "Mi-28",
	"Centurion C-RAM":         "百夫长",
	"RAH-68 Huron":            "肖肖尼",
	"YG-99 Hannibal":          "汉尼拔",
	"SU-70":                   "德鲁格",
}

var soldierCategories = map[string]string{
	"Assault":  "突击",
	"Engineer": "工程",
	"Support":  "支援",
	"Recon":    "侦察",
}

var soldierNames = map[string]string{
	"Mackay ":   "麦凯",
	"Sundance ": "日舞",
	"Irish ":    "爱尔兰佬",
	"Casper ":   "卡斯帕",
	"Rao ":      "拉奥",
	"Dozer ":    "推土机",
	"Boris ":    "鲍里斯",
	"Paik ":     "智秀",
	"Lis":       "莉斯",
	"Crawford":  "克劳福德",
	"Zain":      "扎因",
	"Blasco":    "布拉斯科",
	"Falck ":    "法尔克",
}

// gameModes is keyed by the lower-cased mode string from the server list.
var gameModes = map[string]string{
	"conquest":           "征服",
	"conquest large":     "大型征服",
	"conquest small":     "小型征服",
	"domination":         "阵地战",
	"rush":               "突袭(突破)",
	"team deathmatch":    "团队死斗",
	"squad deathmatch":   "小队死斗",
	"obliteration":       "拆除炸弹",
	"defuse":             "爆破",
	"air superiority":    "空中优势",
	"carrier assault":    "航母突袭",
	"chain link":         "环环相扣",
	"capture the flag":   "夺旗",
	"gun master":         "枪神",
	"squad obliteration": "爆破",
}

var mapNames = map[string]string{
	"Siege of Shanghai":      " 上海之围 ",
	"Operation Locker":       " 极地监狱 ",
	"Flood Zone":             " 水乡泽国 ",
	"Golmud Railway":         " 荒野游踪 ",
	"Paracel Storm":          " 西沙风暴 ",
	"Lancang Dam":            " 水坝风云 ",
	"Hainan Resort":          " 度假胜地 ",
	"Dawnbreaker":            " 破晓行动 ",
	"Rogue Transmission":     " 广播中心 ",
	"Zavod 311":              " 废弃工厂 ",
	"Zavod: Graveyard Shift": " 废弃工厂：大夜班 ",
	"Dragon Valley 2015":     " 龙之谷2015 ",
	"Operation Outbreak":     " 丛林计划 ",
	"Altai Range":            " 阿尔泰山 ",
	"Dragon Pass":            " 龙隘之战 ",
	"Guilin Peaks":           " 桂林群山 ",
	"Silk Road":              " 丝绸之路 ",
	"Caspian Border 2014":    " 里海边境2014 ",
	"Gulf of Oman 2014":      " 阿曼湾2014 ",
	"Operation Metro 2014":   " 地铁行动2014 ",
	"Firestorm 2014":         " 火线风暴2014 ",
	"Lost Islands":           " 失落岛屿 ",
	"Nansha Strike":          " 南沙风暴 ",
	"Wave Breaker":           " 消波礁岸 ",
	"Operation Mortar":       " 迫击行动 ",
	"Lumphini Garden":        " 隆披尼花园 ",
	"Pearl Market":           " 红桥市场 ",
	"Propaganda":             " 政宣广场 ",
	"Sunken Dragon":          " 沉龙河畔 ",
	"Giants of Karelia":      " 卡雷利亚巨人 ",
	"Hammerhead":             " 双髻鲨基地 ",
	"Hangar 21":              "21 号机库 ",
	"Operation Whiteout":     " 雪盲行动 ",
	"GUILIN PEAKS":           " 桂林群山 ",
	"SILK ROAD":              " 丝绸之路 ",
}

var banners = map[string]string{
	"bf3":    "https://s21.ax1x.com/2025/07/16/pV1jG5t.jpg",
	"bf4":    "https://s21.ax1x.com/2025/07/16/pV1XV1S.jpg",
	"bf1":    "https://s1.ax1x.com/2022/12/15/zoMaxe.jpg",
	"bfv":    "https://s1.ax1x.com/2022/12/14/z54oIs.jpg",
	"bf2042": "https://s1.ax1x.com/2023/01/24/pSYXS3Q.jpg",
}

var logos = map[string]string{
	"bf3": "https://s21.ax1x.com/2025/07/19/pV3I9ET.png",
	"bf4": "https://s21.ax1x.com/2025/07/19/pV3IRaT.png",
	"bf1": "https://s21.ax1x.com/2025/07/19/pV35O3j.png",
	"bfv": "https://s21.ax1x.com/2025/07/19/pV35LCQ.png",
}

var backgroundColors = map[string]string{
	"bf3":    "#111B2B",
	"bf4":    "#111B2B",
	"bf1":    "rgb(139 81 41)",
	"bfv":    "rgb(38 62 112)",
	"bf2042": "#111B2B",
}

// repairedImages maps lower-cased item names whose upstream image URL is
// broken to a known-good replacement.
var repairedImages = map[string]string{
	"su-50":  "https://s21.ax1x.com/2025/07/23/pVGGFeK.png",
	"lav-25": "https://s21.ax1x.com/2025/08/13/pVwK8dP.png",
	"lav-ad": "https://s21.ax1x.com/2025/08/13/pVwKUzQ.png",
}

func lookup(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

// WeaponCategory returns the localized weapon category label.
func WeaponCategory(name string) string { return lookup(weaponCategories, name) }

// VehicleCategory returns the localized vehicle category label.
func VehicleCategory(name string) string { return lookup(vehicleCategories, name) }

// VehicleName returns the localized vehicle name.
func VehicleName(name string) string { return lookup(vehicleNames, name) }

// SoldierCategory returns the localized specialist role label.
func SoldierCategory(name string) string { return lookup(soldierCategories, name) }

// SoldierName returns the localized specialist name.
func SoldierName(name string) string { return lookup(soldierNames, name) }

// GameMode returns the localized mode label. Callers pass the lower-cased
// mode string.
func GameMode(mode string) string { return lookup(gameModes, mode) }

// MapName returns the localized map name.
func MapName(name string) string { return lookup(mapNames, name) }

// Banner returns the banner image URL for a game, or "" when unknown.
func Banner(game string) string { return banners[game] }

// Logo returns the logo image URL for a game, or "" when unknown.
func Logo(game string) string { return logos[game] }

// BackgroundColor returns the report background color for a game.
func BackgroundColor(game string) string { return backgroundColors[game] }

// RepairedImage returns a replacement URL for items whose upstream image is
// broken. The second return reports whether a repair entry exists; name must
// already be lower-cased.
func RepairedImage(name string) (string, bool) {
	url, ok := repairedImages[name]
	return url, ok
}

// StaticImages returns every static artwork URL keyed by a stable name, for
// cache preloading.
func StaticImages() map[string]string {
	out := map[string]string{"default_avatar": DefaultAvatar}
	for g, u := range banners {
		out[g+"_banner"] = u
	}
	for g, u := range logos {
		out[g+"_logo"] = u
	}
	return out
}
