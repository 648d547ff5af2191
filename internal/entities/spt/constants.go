package spt

// Traders maps trader display names to their canonical 24-hex ids.
var Traders = map[string]string{
	"BTR":         "656f0f98d80a697f855d34b1",
	"Fence":       "579dc571d53a0658a154fbec",
	"Jaeger":      "5c0647fdd443bc2504c2d371",
	"Legs":        "6748edbcb936f1098d4303e4",
	"Lightkeeper": "638f541a29ffd1183d187f57",
	"Mechanic":    "5a7c2eca46aef81a7ca2145d",
	"Peacekeeper": "5935c25fb3acc3127c3d8cd9",
	"Prapor":      "54cb50c76803fa8b248b4571",
	"Ragman":      "5ac3b934156ae10c4430e83c",
	"Ref":         "6617beeaa9cfa777ca915b7c",
	"Skier":       "58330581ace78e27b8b10cee",
	"Therapist":   "54cb57776803fa99248b456e",
}

// DefaultTrader is used whenever a trader id cannot be resolved back to a name.
const DefaultTrader = "Prapor"

// TraderID resolves a trader display name to its id. Unknown names resolve
// to the default trader.
func TraderID(name string) string {
	if id, ok := Traders[name]; ok {
		return id
	}
	return Traders[DefaultTrader]
}

// TraderName resolves a trader id back to its display name. Unknown ids
// resolve to the default trader.
func TraderName(id string) string {
	for name, tid := range Traders {
		if tid == id {
			return name
		}
	}
	return DefaultTrader
}

// Currency template ids used in barter schemes.
const (
	CurrencyRoubles = "Roubles"
	CurrencyDollars = "Dollars"
	CurrencyEuros   = "Euros"

	TplRoubles = "5449016a4bdc2d6f028b456f"
	TplDollars = "5696686a4bdc2da3298b456a"
	TplEuros   = "569668774bdc2da2298b4568"
)

// CurrencyTpl returns the item template id for a currency name. Unknown
// currencies fall back to Roubles.
func CurrencyTpl(currency string) string {
	switch currency {
	case CurrencyDollars:
		return TplDollars
	case CurrencyEuros:
		return TplEuros
	default:
		return TplRoubles
	}
}

// CurrencyFromTpl returns the currency name for an item template id.
// Unrecognized template ids resolve to Roubles.
func CurrencyFromTpl(tpl string) string {
	switch tpl {
	case TplDollars:
		return CurrencyDollars
	case TplEuros:
		return CurrencyEuros
	default:
		return CurrencyRoubles
	}
}

// ConditionTypes lists the supported quest condition discriminators.
var ConditionTypes = []string{
	"CounterCreator",
	"FindItem",
	"HandoverItem",
	"LeaveItemAtLocation",
	"Level",
	"PlaceBeacon",
	"Quest",
	"Skill",
	"TraderLoyalty",
	"VisitPlace",
}

// CounterConditionTypes lists the sub-discriminators nested inside a
// CounterCreator condition.
var CounterConditionTypes = []string{
	"Kills",
	"ExitName",
	"ExitStatus",
	"Location",
	"VisitPlace",
}

// RewardTypes lists the supported reward discriminators.
var RewardTypes = []string{
	"Achievement",
	"AssortmentUnlock",
	"Experience",
	"Item",
	"Skill",
	"StashRows",
	"TraderStanding",
	"TraderUnlock",
}

// Condition categories on a quest, in document order.
const (
	CategoryAvailableForStart  = "AvailableForStart"
	CategoryAvailableForFinish = "AvailableForFinish"
	CategoryFail               = "Fail"
)

// ConditionCategories lists the valid condition category keys.
var ConditionCategories = []string{
	CategoryAvailableForStart,
	CategoryAvailableForFinish,
	CategoryFail,
}

// Reward timings on a quest.
const (
	TimingSuccess = "Success"
	TimingStarted = "Started"
	TimingFail    = "Fail"
)

// RewardTimings lists the valid reward timing keys.
var RewardTimings = []string{TimingSuccess, TimingStarted, TimingFail}

// Quest assort outcome keys.
const (
	OutcomeSuccess = "success"
	OutcomeStarted = "started"
	OutcomeFail    = "fail"
)

// Locations lists the valid quest target locations.
var Locations = []string{
	"any",
	"bigmap",
	"factory4_day",
	"factory4_night",
	"interchange",
	"laboratory",
	"labyrinth",
	"lighthouse",
	"rezervbase",
	"shoreline",
	"tarkovstreets",
	"woods",
	"sandbox",
	"sandbox_high",
}

// QuestTypes lists the valid quest type values.
var QuestTypes = []string{
	"Completion",
	"Discover",
	"Elimination",
	"Exploration",
	"Loyalty",
	"Merchant",
	"Multi",
	"PickUp",
	"Skill",
	"Standing",
	"WeaponAssembly",
}

// Factions a quest can be offered to.
var Factions = []string{"pmc", "scav", "bear", "usec"}

// CompareMethods accepted by level/skill/loyalty conditions.
var CompareMethods = []string{">=", "<=", "==", ">", "<"}

// DefaultCompareMethod fills in when a document omits compareMethod.
const DefaultCompareMethod = ">="

// Quest status values used in prerequisite-quest conditions.
const (
	QuestStatusLocked    = 1
	QuestStatusAvailable = 2
	QuestStatusStarted   = 3
	QuestStatusSuccess   = 4
	QuestStatusFailed    = 5
)

// ExitStatuses lists raid outcomes usable in ExitStatus counter conditions.
var ExitStatuses = []string{"Survived", "Runner", "Killed", "Left", "MissingInAction"}

// BodyParts lists targetable body parts for elimination conditions.
var BodyParts = []string{
	"Any",
	"Head",
	"Thorax",
	"Stomach",
	"LeftArm",
	"RightArm",
	"LeftLeg",
	"RightLeg",
}

// EliminationTargets lists valid kill targets.
var EliminationTargets = []string{
	"Any",
	"Savage",
	"AnyPmc",
	"Bear",
	"Usec",
	"pmcBot",
	"exUsec",
	"bossBully",
	"bossKilla",
	"bossKojaniy",
	"bossSanitar",
	"bossGluhar",
	"bossKnight",
	"bossTagilla",
	"bossZryachiy",
	"bossBoar",
	"bossKolontay",
	"bossPartisan",
	"sectantPriest",
	"sectantWarrior",
}

// Skills usable in skill conditions and rewards.
var Skills = []string{
	"Attention",
	"Charisma",
	"Covert Movement",
	"Endurance",
	"Health",
	"Hideout Management",
	"Immunity",
	"Intellect",
	"Light Vests",
	"Mag Drills",
	"Memory",
	"Metabolism",
	"Perception",
	"Pistols",
	"Recoil Control",
	"Revolver",
	"Search",
	"Shotguns",
	"SMG",
	"Sniper Rifles",
	"Strength",
	"Stress Resistance",
	"Surgery",
	"Throwables",
	"Troubleshooting",
	"Vitality",
}

// ModSlots lists the attachment slots a weapon part can occupy.
var ModSlots = []string{
	"mod_pistol_grip",
	"mod_stock",
	"mod_magazine",
	"mod_barrel",
	"mod_handguard",
	"mod_sight_rear",
	"mod_sight_front",
	"mod_muzzle",
	"mod_gas_block",
	"mod_tactical",
	"mod_mount",
	"mod_scope",
	"mod_foregrip",
	"mod_equipment",
	"mod_mount_000",
	"mod_mount_001",
	"mod_mount_002",
	"mod_mount_003",
	"mod_tactical_000",
	"mod_tactical_001",
	"mod_tactical_002",
	"mod_tactical_003",
	"mod_receiver",
	"mod_charge",
	"mod_trigger",
	"mod_hammer",
	"mod_catch",
	"mod_reciever",
}

// DefaultModSlot fills in when an imported part document omits slotId.
const DefaultModSlot = "mod_pistol_grip"
