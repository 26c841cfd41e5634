package normalize

import "github.com/BayHyn/battlefield-tool/internal/models"

// Schema selects which upstream shape a payload uses.
type Schema string

const (
	SchemaGT  Schema = "gt"
	SchemaBTR Schema = "btr"
)

// DataType is the requested report kind.
type DataType string

const (
	DataStat     DataType = "stat"
	DataWeapons  DataType = "weapons"
	DataVehicles DataType = "vehicles"
	DataSoldiers DataType = "soldiers"
	DataServers  DataType = "servers"
)

const (
	summaryLimit   = 3  // entries per list on the summary card
	reportLimit    = 50 // entries on a dedicated aggregator report
	topSoldierOnly = 1  // the summary card shows just the best specialist
)

const btrSortKey = "stats.kills.value"

// Normalize turns one raw, already-fetched payload into a ReportBundle. The
// caller attaches the HTTP status under "code" before handing the map over.
// Errors come back as values; the caller decides whether to answer with text
// instead of a rendered card.
func Normalize(raw map[string]any, game string, dataType DataType, schema Schema) (*models.ReportBundle, error) {
	if raw == nil {
		return nil, &UpstreamError{Code: 0, Message: "上游接口没有响应任何信息", Game: game}
	}
	if code := fieldInt(raw, "code"); code != 200 {
		return nil, &UpstreamError{Code: code, Message: upstreamMessage(raw), Game: game}
	}
	if dataType == DataSoldiers && game != "bf2042" {
		return nil, &UnsupportedError{Game: game, DataType: dataType, Message: "士兵查询目前仅支持战地2042。"}
	}
	if dataType == DataServers && (schema != SchemaGT || game == "bf2042" || game == "bf6") {
		return nil, &UnsupportedError{Game: game, DataType: dataType, Message: "该游戏暂不支持服务器查询。"}
	}

	switch schema {
	case SchemaBTR:
		return normalizeBTR(raw, game, dataType)
	default:
		return normalizeGT(raw, game, dataType)
	}
}

func normalizeGT(raw map[string]any, game string, dataType DataType) (*models.ReportBundle, error) {
	bundle := models.NewReportBundle(game)

	if dataType == DataServers {
		for _, rec := range recordsAt(raw, "servers") {
			bundle.Servers = append(bundle.Servers, ServerFromGT(rec))
		}
		return bundle, nil
	}

	bundle.Player = PlayerFromGT(raw)

	weaponLimit, vehicleLimit := 0, 0
	switch dataType {
	case DataStat:
		weaponLimit, vehicleLimit = summaryLimit, summaryLimit
	case DataWeapons:
		weaponLimit = reportLimit
	case DataVehicles:
		vehicleLimit = reportLimit
	}

	if dataType == DataStat || dataType == DataWeapons {
		for _, rec := range Process(recordsAt(raw, "weapons"), "kills", weaponLimit) {
			bundle.Weapons = append(bundle.Weapons, WeaponFromGT(rec, game))
		}
	}
	if dataType == DataStat || dataType == DataVehicles {
		for _, rec := range Process(recordsAt(raw, "vehicles"), "kills", vehicleLimit) {
			bundle.Vehicles = append(bundle.Vehicles, VehicleFromGT(rec))
		}
	}
	return bundle, nil
}

func normalizeBTR(raw map[string]any, game string, dataType DataType) (*models.ReportBundle, error) {
	if _, ok := raw["segments"]; !ok {
		return nil, &MalformedPayloadError{Missing: "segments"}
	}

	var weapons, vehicles, soldiers []map[string]any
	if game == "bf6" {
		// bf6 ships one combined payload; its segment list is tagged by type.
		for _, rec := range recordsAt(raw, "segments") {
			switch fieldString(rec, "type", "") {
			case "kit":
				soldiers = append(soldiers, rec)
			case "weapon":
				weapons = append(weapons, rec)
			case "vehicle":
				vehicles = append(vehicles, rec)
			}
		}
	} else {
		// For 2042 the fetch layer merges the per-kind endpoint responses
		// into the stat payload under these keys.
		weapons = recordsAt(raw, "weapons")
		vehicles = recordsAt(raw, "vehicles")
		soldiers = recordsAt(raw, "soldiers")
	}

	weaponLimit, vehicleLimit, soldierLimit := 0, 0, 0
	if dataType == DataStat {
		weaponLimit, vehicleLimit, soldierLimit = summaryLimit, summaryLimit, topSoldierOnly
	}

	bundle := models.NewReportBundle(game)
	bundle.Player = PlayerFromBTR(raw)

	if dataType == DataStat || dataType == DataWeapons {
		for _, rec := range Process(weapons, btrSortKey, weaponLimit) {
			bundle.Weapons = append(bundle.Weapons, WeaponFromBTR(rec))
		}
	}
	if dataType == DataStat || dataType == DataVehicles {
		for _, rec := range Process(vehicles, btrSortKey, vehicleLimit) {
			bundle.Vehicles = append(bundle.Vehicles, VehicleFromBTR(rec))
		}
	}
	if dataType == DataStat || dataType == DataSoldiers {
		for _, rec := range Process(soldiers, btrSortKey, soldierLimit) {
			bundle.Soldiers = append(bundle.Soldiers, SoldierFromBTR(rec))
		}
	}
	return bundle, nil
}

// upstreamMessage pulls the first entry of an "errors" list when present.
func upstreamMessage(raw map[string]any) string {
	errs, ok := raw["errors"].([]any)
	if !ok || len(errs) == 0 {
		return ""
	}
	return toString(errs[0], "")
}
