package stars

import "github.com/phrazzld/saju-api/internal/domain"

// Rule names. They are stable keys of evaluation results.
const (
	CheonulGwiin   = "cheonul_gwiin"
	MunchangGwiin  = "munchang_gwiin"
	BokseongGwiin  = "bokseong_gwiin"
	WoldeokGwiin   = "woldeok_gwiin"
	CheondeokGwiin = "cheondeok_gwiin"
	WolgongGwiin   = "wolgong_gwiin"
	Geumyeo        = "geumyeo"
	Geonrok        = "geonrok"
	Amrok          = "amrok"
	Samgi          = "samgi"
	Cheonuiseong   = "cheonuiseong"
	BananSal       = "banan_sal"
	DohwaSal       = "dohwa_sal"
	YeokmaSal      = "yeokma_sal"
	HwagaeSal      = "hwagae_sal"
	GongmangSal    = "gongmang_sal"
	YanginSal      = "yangin_sal"
	BaekhoSal      = "baekho_sal"
	GwaegangSal    = "gwaegang_sal"
	HyeonchimSal   = "hyeonchim_sal"
	HongyeomSal    = "hongyeom_sal"
	GeupgakSal     = "geupgak_sal"
	GeopSal        = "geop_sal"
	SuokSal        = "suok_sal"
	MangsinSal     = "mangsin_sal"
	CheonraJimang  = "cheonra_jimang"
	WonjinSal      = "wonjin_sal"
	GwimungwanSal  = "gwimungwan_sal"
)

// Stem-keyed tables. Values list target branches.
var (
	cheonulTable = map[string]string{
		"甲": "丑未", "戊": "丑未", "庚": "丑未",
		"乙": "子申", "己": "子申",
		"丙": "亥酉", "丁": "亥酉",
		"辛": "午寅",
		"壬": "巳卯", "癸": "巳卯",
	}
	munchangTable = map[string]string{
		"甲": "巳", "乙": "午", "丙": "申", "丁": "酉", "戊": "申",
		"己": "酉", "庚": "亥", "辛": "子", "壬": "寅", "癸": "卯",
	}
	bokseongTable = map[string]string{
		"甲": "寅", "乙": "卯", "丙": "子", "丁": "酉", "戊": "申",
		"己": "未", "庚": "午", "辛": "巳", "壬": "辰", "癸": "丑",
	}
	geumyeoTable = map[string]string{
		"甲": "辰", "乙": "巳", "丙": "未", "丁": "申", "戊": "未",
		"己": "申", "庚": "戌", "辛": "亥", "壬": "丑", "癸": "寅",
	}
	geonrokTable = map[string]string{
		"甲": "寅", "乙": "卯", "丙": "巳", "丁": "午", "戊": "巳",
		"己": "午", "庚": "申", "辛": "酉", "壬": "亥", "癸": "子",
	}
	amrokTable = map[string]string{
		"甲": "亥", "乙": "寅", "丙": "申", "丁": "未", "戊": "巳",
		"己": "午", "庚": "申", "辛": "酉", "壬": "亥", "癸": "寅",
	}
	// Yin stems have no entry.
	yanginTable = map[string]string{
		"甲": "卯", "丙": "午", "戊": "午", "庚": "酉", "壬": "子",
	}
	hongyeomTable = map[string]string{
		"甲": "午", "乙": "午", "丙": "寅", "丁": "未", "戊": "辰",
		"己": "辰", "庚": "戌", "辛": "酉", "壬": "子", "癸": "申",
	}
	geupgakStemTable = map[string]string{
		"甲": "申", "乙": "酉", "丙": "亥子", "丁": "亥子",
		"戊": "丑寅", "己": "丑寅", "庚": "辰", "辛": "巳",
		"壬": "午未", "癸": "午未",
	}
)

// Month-branch-keyed tables. Values hold one target character.
var (
	woldeokTable = map[string]string{
		"子": "壬", "丑": "庚", "寅": "丙", "卯": "甲", "辰": "壬", "巳": "庚",
		"午": "丙", "未": "甲", "申": "壬", "酉": "庚", "戌": "丙", "亥": "甲",
	}
	// Three entries hold a branch and can never match a stem. They are kept
	// as listed.
	cheondeokTable = map[string]string{
		"子": "辛", "丑": "庚", "寅": "丁", "卯": "申", "辰": "乙", "巳": "辛",
		"午": "亥", "未": "甲", "申": "癸", "酉": "寅", "戌": "丙", "亥": "乙",
	}
	wolgongTable = map[string]string{
		"子": "丙", "丑": "甲", "寅": "壬", "卯": "庚", "辰": "丙", "巳": "甲",
		"午": "壬", "未": "庚", "申": "丙", "酉": "甲", "戌": "壬", "亥": "庚",
	}
	cheonuiTable = map[string]string{
		"子": "亥", "丑": "子", "寅": "丑", "卯": "寅", "辰": "卯", "巳": "辰",
		"午": "巳", "未": "午", "申": "未", "酉": "申", "戌": "酉", "亥": "戌",
	}
	geupgakSeasonTable = map[string]string{
		"寅卯辰": "戌亥",
		"巳午未": "卯辰",
		"申酉戌": "寅丑",
		"亥子丑": "卯辰",
	}
)

// Three-harmony tables.
var (
	bananTable = map[domain.HarmonyGroup]string{
		domain.HarmonyFire:  "未",
		domain.HarmonyMetal: "戌",
		domain.HarmonyWood:  "辰",
		domain.HarmonyWater: "丑",
	}
	dohwaTable = map[domain.HarmonyGroup]string{
		domain.HarmonyFire:  "卯",
		domain.HarmonyWater: "酉",
		domain.HarmonyMetal: "午",
		domain.HarmonyWood:  "子",
	}
	yeokmaTable = map[domain.HarmonyGroup]string{
		domain.HarmonyFire:  "申",
		domain.HarmonyWater: "寅",
		domain.HarmonyMetal: "亥",
		domain.HarmonyWood:  "巳",
	}
	hwagaeTable = map[domain.HarmonyGroup]string{
		domain.HarmonyFire:  "戌",
		domain.HarmonyWater: "辰",
		domain.HarmonyMetal: "丑",
		domain.HarmonyWood:  "未",
	}
	// Shared by the robbery and disgrace rules.
	geopTable = map[domain.HarmonyGroup]string{
		domain.HarmonyWater: "巳",
		domain.HarmonyFire:  "亥",
		domain.HarmonyWood:  "申",
		domain.HarmonyMetal: "寅",
	}
)

var yearAndDay = []domain.Position{domain.PositionYear, domain.PositionDay}

// catalog lists every rule in report order.
var catalog = []Rule{
	{
		Name:        CheonulGwiin,
		Label:       "Heavenly Noble (天乙貴人)",
		Kind:        KindStemLookup,
		Category:    domain.CategoryAuspicious,
		Description: "The highest auspicious star. Opens good fortune, advancement, wealth and honour.",
		lookups:     []lookup{{key: dayStem, table: cheonulTable}},
	},
	{
		Name:        MunchangGwiin,
		Label:       "Literary Star (文昌貴人)",
		Kind:        KindStemLookup,
		Category:    domain.CategoryAuspicious,
		Description: "Studies well and is especially lucky in examinations.",
		lookups:     []lookup{{key: dayStem, table: munchangTable}},
	},
	{
		Name:        BokseongGwiin,
		Label:       "Fortune Star (福星貴人)",
		Kind:        KindStemLookup,
		Category:    domain.CategoryAuspicious,
		Description: "Blessed with helpful people and never short of food.",
		lookups:     []lookup{{key: dayStem, table: bokseongTable}},
	},
	{
		Name:        WoldeokGwiin,
		Label:       "Monthly Virtue (月德貴人)",
		Kind:        KindBranchLookup,
		Category:    domain.CategoryAuspicious,
		Description: "Receives the virtue of the moon. Good reputation and character, favourable for public office.",
		lookups:     []lookup{{key: monthBranch, table: woldeokTable}},
		matchStems:  true,
	},
	{
		Name:        CheondeokGwiin,
		Label:       "Heavenly Virtue (天德貴人)",
		Kind:        KindBranchLookup,
		Category:    domain.CategoryAuspicious,
		Description: "Receives the virtue of heaven. A guardian that protects against every kind of disaster.",
		lookups:     []lookup{{key: monthBranch, table: cheondeokTable}},
		matchStems:  true,
	},
	{
		Name:        WolgongGwiin,
		Label:       "Monthly Void Noble (月空貴人)",
		Kind:        KindBranchLookup,
		Category:    domain.CategoryAuspicious,
		Description: "The moon in the sky. Gains popularity and draws attention from others.",
		lookups:     []lookup{{key: monthBranch, table: wolgongTable}},
		matchStems:  true,
	},
	{
		Name:        Geumyeo,
		Label:       "Golden Carriage (金輿)",
		Kind:        KindStemLookup,
		Category:    domain.CategoryAuspicious,
		Description: "Fortunate in marriage and meets a good spouse.",
		lookups:     []lookup{{key: yearStem, table: geumyeoTable}},
	},
	{
		Name:        Geonrok,
		Label:       "Prosperity (建祿)",
		Kind:        KindStemLookup,
		Category:    domain.CategoryAuspicious,
		Description: "Never goes hungry, strong-willed and healthy. Favourable for office or salaried work.",
		lookups:     []lookup{{key: dayStem, table: geonrokTable}},
	},
	{
		Name:        Amrok,
		Label:       "Hidden Prosperity (暗祿)",
		Kind:        KindStemLookup,
		Category:    domain.CategoryAuspicious,
		Description: "Receives help and wealth others do not see. Unexpected aid arrives in a crisis.",
		lookups:     []lookup{{key: dayStem, table: amrokTable}},
	},
	{
		Name:        Samgi,
		Label:       "Three Marvels (三奇)",
		Kind:        KindStructural,
		Category:    domain.CategoryAuspicious,
		Description: "Good looks and great ambition.",
		match:       matchSamgi,
	},
	{
		Name:        Cheonuiseong,
		Label:       "Heavenly Doctor (天醫星)",
		Kind:        KindBranchLookup,
		Category:    domain.CategoryAuspicious,
		Description: "Strong resistance to illness. Suited to medicine, social work and other healing professions.",
		lookups:     []lookup{{key: monthBranch, table: cheonuiTable}},
	},
	{
		Name:        BananSal,
		Label:       "Saddle Star (攀鞍煞)",
		Kind:        KindHarmonyLookup,
		Category:    domain.CategoryAuspicious,
		Description: "Fortune to earn merit or rise to a high position.",
		harmony:     &harmonyLookup{from: []domain.Position{domain.PositionYear}, table: bananTable},
	},
	{
		Name:        DohwaSal,
		Label:       "Peach Blossom (桃花煞)",
		Kind:        KindHarmonyLookup,
		Category:    domain.CategoryNotable,
		Description: "Romantic attraction that never runs out and weakness to temptation. Favourable for popular careers such as entertainment or politics.",
		harmony:     &harmonyLookup{from: yearAndDay, table: dohwaTable},
	},
	{
		Name:        YeokmaSal,
		Label:       "Travelling Horse (驛馬煞)",
		Kind:        KindHarmonyLookup,
		Category:    domain.CategoryNotable,
		Description: "Cannot settle in one place. Today it favours travel, work abroad and sudden career moves.",
		harmony:     &harmonyLookup{from: yearAndDay, table: yeokmaTable},
	},
	{
		Name:        HwagaeSal,
		Label:       "Canopy (華蓋煞)",
		Kind:        KindHarmonyLookup,
		Category:    domain.CategoryNotable,
		Description: "Artistic talent whose outcome depends strongly on the people met in life.",
		harmony:     &harmonyLookup{from: yearAndDay, table: hwagaeTable},
	},
	{
		Name:        GongmangSal,
		Label:       "Void (空亡)",
		Kind:        KindStructural,
		Category:    domain.CategoryNotable,
		Description: "Efforts come to nothing and both good and bad influences are neutralised.",
		match:       matchGongmang,
	},
	{
		Name:        YanginSal,
		Label:       "Goat Blade (羊刃煞)",
		Kind:        KindStemLookup,
		Category:    domain.CategoryInauspicious,
		Description: "A forceful star linked to surgery and accidents. Careers dealing with life and death, such as medicine or law, can offset it.",
		lookups:     []lookup{{key: dayStem, table: yanginTable}},
	},
	{
		Name:        BaekhoSal,
		Label:       "White Tiger (白虎煞)",
		Kind:        KindStructural,
		Category:    domain.CategoryInauspicious,
		Description: "Misfortune of being seized by a tiger: accidents, illness and separation, though it can also mark a special talent.",
		match:       dayPillarIn("甲辰", "乙未", "丙戌", "丁丑", "戊辰", "壬戌", "癸丑"),
	},
	{
		Name:        GwaegangSal,
		Label:       "Commanding Star (魁罡煞)",
		Kind:        KindStructural,
		Category:    domain.CategoryInauspicious,
		Description: "Extremely bright but carries violent, destructive force. Shows as extreme nobility or extreme poverty.",
		match:       dayPillarIn("戊戌", "庚辰", "庚戌", "壬辰"),
	},
	{
		Name:        HyeonchimSal,
		Label:       "Suspended Needle (懸針煞)",
		Kind:        KindStructural,
		Category:    domain.CategoryInauspicious,
		Description: "Sensitive nerves and prone to insomnia. Today associated with medicine, journalism and IT.",
		match:       matchHyeonchim,
	},
	{
		Name:        HongyeomSal,
		Label:       "Red Flame (紅艶煞)",
		Kind:        KindStemLookup,
		Category:    domain.CategoryInauspicious,
		Description: "A star of romance. Leads relationships on one's own initiative.",
		lookups:     []lookup{{key: dayStem, table: hongyeomTable}},
	},
	{
		Name:        GeupgakSal,
		Label:       "Sudden Leg (急脚煞)",
		Kind:        KindStemLookup,
		Category:    domain.CategoryInauspicious,
		Description: "Leg injuries or fractures. The material or mental foundation is broken.",
		lookups:     []lookup{{key: dayStem, table: geupgakStemTable}},
		seasons:     []seasonLookup{{key: monthBranch, table: geupgakSeasonTable}},
	},
	{
		Name:        GeopSal,
		Label:       "Robbery (劫煞)",
		Kind:        KindHarmonyLookup,
		Category:    domain.CategoryInauspicious,
		Description: "Easily loses things to others. Outcomes are decided by strong outside forces.",
		harmony:     &harmonyLookup{from: []domain.Position{domain.PositionDay}, table: geopTable},
	},
	{
		Name:        SuokSal,
		Label:       "Prison (囚獄煞)",
		Kind:        KindStructural,
		Category:    domain.CategoryInauspicious,
		Description: "Imprisonment or restricted freedom.",
		match:       matchSuok,
	},
	{
		Name:        MangsinSal,
		Label:       "Disgrace (亡身煞)",
		Kind:        KindHarmonyLookup,
		Category:    domain.CategoryInauspicious,
		Description: "Public disgrace and unlucky incidents.",
		harmony:     &harmonyLookup{from: yearAndDay, table: geopTable},
	},
	{
		Name:        CheonraJimang,
		Label:       "Heaven Net and Earth Trap (天羅地網)",
		Kind:        KindStructural,
		Category:    domain.CategoryInauspicious,
		Description: "Nets spread across heaven and earth leave no room to move. Once inauspicious, it is now also read as spiritual depth or inner strength.",
		match:       matchCheonraJimang,
	},
	{
		Name:        WonjinSal,
		Label:       "Resentment (怨嗔煞)",
		Kind:        KindStructural,
		Category:    domain.CategoryInauspicious,
		Description: "Mutual resentment and anger. Poor compatibility.",
		match:       antagonistMatcher(wonjinTable),
	},
	{
		Name:        GwimungwanSal,
		Label:       "Ghost Gate (鬼門關煞)",
		Kind:        KindStructural,
		Category:    domain.CategoryInauspicious,
		Description: "Mental instability and jealous suspicion, though sometimes an exceptional mind.",
		match:       antagonistMatcher(gwimungwanTable),
	},
}

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, r := range catalog {
		idx[r.Name] = i
	}
	return idx
}()

// Rules returns a copy of the catalog in report order.
func Rules() []Rule {
	out := make([]Rule, len(catalog))
	copy(out, catalog)
	return out
}

// RuleNames returns the rule names in report order.
func RuleNames() []string {
	names := make([]string, len(catalog))
	for i, r := range catalog {
		names[i] = r.Name
	}
	return names
}

// Find returns the rule with the given name.
func Find(name string) (Rule, bool) {
	i, ok := catalogIndex[name]
	if !ok {
		return Rule{}, false
	}
	return catalog[i], true
}
