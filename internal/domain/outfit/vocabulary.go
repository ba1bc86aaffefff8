package outfit

// Rule tables are read-only after package initialization. Slices rather than
// maps keep every scan in a fixed order so repeated runs sum identically.

var colorTerms = []string{
	"red", "blue", "green", "yellow", "black", "white", "grey", "gray",
	"purple", "pink", "orange", "brown", "navy", "beige", "cream", "tan",
	"olive", "burgundy", "charcoal", "silver", "gold", "teal", "khaki",
	"ivory", "taupe", "lavender", "mint", "coral", "turquoise", "magenta",
	"mustard", "rust", "maroon", "fuchsia", "lime",
}

var colorAliases = map[string]string{
	"gray": "grey",
}

var materialTerms = []string{
	"cotton", "wool", "leather", "denim", "silk", "linen", "polyester",
	"nylon", "cashmere", "velvet", "suede", "corduroy", "fleece", "tweed",
	"satin", "chiffon", "lace", "canvas", "jersey", "flannel",
}

type categoryTerms struct {
	category Category
	terms    []string
}

// phraseJoiners open trailing qualifiers that never carry the garment noun.
var phraseJoiners = []string{"with", "featuring", "and", "plus"}

// typeVocabulary lists countable nouns in the singular; document.has accepts
// the plural. Category resolution picks the head noun, so "dress shoe" is
// footwear and "sweater dress" a one-piece.
var typeVocabulary = []categoryTerms{
	{CategoryTop, []string{
		"t-shirt", "tee", "shirt", "dress shirt", "blouse", "sweater", "sweatshirt",
		"hoodie", "polo", "tank", "tank top", "crop top", "top", "turtleneck",
		"cardigan", "henley", "camisole", "jumper",
	}},
	{CategoryBottom, []string{
		"jeans", "pants", "dress pants", "trousers", "shorts", "skirt", "chinos",
		"slacks", "leggings", "joggers", "sweatpants",
	}},
	{CategoryOuterwear, []string{
		"jacket", "coat", "blazer", "parka", "windbreaker", "vest", "raincoat",
		"trench", "poncho", "overcoat", "puffer", "anorak",
	}},
	{CategoryFootwear, []string{
		"shoe", "dress shoe", "boot", "sneaker", "sandal", "loafer", "heel",
		"flat", "oxford", "trainer", "flip-flop",
	}},
	{CategoryOnePiece, []string{
		"dress", "maxi dress", "sundress", "gown", "jumpsuit", "romper", "playsuit",
		"overalls", "suit", "tuxedo",
	}},
	{CategoryAccessory, []string{
		"watch", "scarf", "tie", "bow tie", "belt", "hat", "cap", "beanie", "glove",
		"sock", "bag", "handbag", "sunglasses", "necklace", "bracelet", "earring",
	}},
}

// keywordFallback is scanned as raw substrings when no whole type term matched,
// catching compounds such as "overshirt" or "snowboots".
var keywordFallback = []categoryTerms{
	{CategoryTop, []string{"t-shirt", "shirt", "blouse", "sweater", "sweatshirt"}},
	{CategoryBottom, []string{"jeans", "pants", "trousers", "shorts", "skirt"}},
	{CategoryOuterwear, []string{"jacket", "coat", "blazer"}},
	{CategoryFootwear, []string{"shoe", "boot", "sneaker"}},
	{CategoryOnePiece, []string{"jumpsuit", "romper"}},
}

var layeringTerms = []string{"layer", "layering", "jacket", "coat"}

type weightedTerm struct {
	term   string
	weight float64
}

var materialFormality = []weightedTerm{
	{"wool", 1.0}, {"cashmere", 1.0}, {"silk", 1.0}, {"leather", 1.0}, {"satin", 1.0},
	{"velvet", 0.5}, {"tweed", 0.5}, {"suede", 0.5}, {"chiffon", 0.5}, {"lace", 0.5},
	{"cotton", -1.0}, {"denim", -1.0}, {"fleece", -1.0},
	{"jersey", -0.5}, {"polyester", -0.5}, {"nylon", -0.5}, {"canvas", -0.5}, {"flannel", -0.5},
}

var typeFormality = []weightedTerm{
	{"t-shirt", -1.5}, {"tee", -1.5}, {"hoodie", -1.5}, {"sweatshirt", -1.5},
	{"jeans", -1.5}, {"sneaker", -1.5}, {"trainer", -1.5}, {"shorts", -1.5},
	{"joggers", -1.5}, {"sweatpants", -2.0}, {"flip-flop", -2.0}, {"leggings", -1.0},
	{"tank", -1.0}, {"sandal", -1.0}, {"cap", -1.0}, {"beanie", -1.0},
	{"dress shirt", 1.5}, {"blazer", 1.5}, {"suit", 2.0}, {"loafer", 1.5},
	{"oxford", 1.5}, {"slacks", 1.5}, {"dress pants", 1.5}, {"dress shoe", 1.5},
	{"trousers", 1.0}, {"tie", 1.0}, {"bow tie", 1.5}, {"gown", 3.0}, {"tuxedo", 3.0},
	{"heel", 1.0}, {"blouse", 0.5}, {"overcoat", 1.0}, {"trench", 0.5},
}

var adjectiveFormality = []weightedTerm{
	{"formal", 2.0}, {"business", 2.0}, {"professional", 2.0},
	{"elegant", 1.5}, {"dressy", 1.5}, {"evening", 1.0}, {"smart", 1.0},
	{"casual", -2.0}, {"relaxed", -2.0}, {"everyday", -2.0}, {"lounge", -2.0},
	{"sporty", -1.5}, {"athletic", -1.5},
}

var structureFormality = []weightedTerm{
	{"tailored", 0.5}, {"structured", 0.5}, {"pressed", 0.5}, {"crisp", 0.5},
	{"pleated", 0.5}, {"fitted", 0.25},
	{"baggy", -0.5}, {"oversized", -0.5}, {"loose", -0.5}, {"faded", -0.5},
	{"distressed", -1.0}, {"ripped", -1.0},
}

type seasonNudge struct {
	terms  []string
	deltas Seasonality
}

var materialSeasons = []seasonNudge{
	{[]string{"linen"}, Seasonality{Summer: 0.3, Winter: -0.2}},
	{[]string{"wool", "cashmere", "fleece"}, Seasonality{Winter: 0.3, Summer: -0.2}},
	{[]string{"cotton", "silk"}, Seasonality{Spring: 0.1, Summer: 0.1}},
	{[]string{"leather", "suede"}, Seasonality{Fall: 0.2}},
	{[]string{"corduroy", "tweed", "flannel"}, Seasonality{Fall: 0.2, Winter: 0.1}},
	{[]string{"denim"}, Seasonality{Spring: 0.1, Fall: 0.1}},
	{[]string{"velvet"}, Seasonality{Winter: 0.2, Fall: 0.1}},
}

var typeSeasons = []seasonNudge{
	{[]string{"shorts", "sandal", "tank", "sundress", "flip-flop"}, Seasonality{Summer: 0.3, Winter: -0.2}},
	{[]string{"sweater", "coat", "parka", "turtleneck", "puffer", "overcoat"}, Seasonality{Winter: 0.3, Summer: -0.2}},
	{[]string{"boot"}, Seasonality{Fall: 0.1, Winter: 0.2}},
	{[]string{"jacket", "hoodie", "trench"}, Seasonality{Fall: 0.2}},
	{[]string{"cardigan", "windbreaker", "raincoat"}, Seasonality{Spring: 0.1, Fall: 0.1}},
	{[]string{"scarf", "glove", "beanie"}, Seasonality{Winter: 0.3}},
}

var descriptorSeasons = []seasonNudge{
	{[]string{"lightweight", "light", "breathable", "short sleeve", "short-sleeve", "sleeveless"}, Seasonality{Summer: 0.2, Spring: 0.1}},
	{[]string{"heavy", "thick", "warm", "insulated", "padded", "lined", "quilted", "knit"}, Seasonality{Winter: 0.3, Summer: -0.2}},
	{[]string{"long sleeve", "long-sleeve"}, Seasonality{Fall: 0.2}},
	{[]string{"pastel"}, Seasonality{Spring: 0.2}},
	{[]string{"floral"}, Seasonality{Spring: 0.2, Summer: 0.1}},
}

var seasonWords = []seasonNudge{
	{[]string{"spring"}, Seasonality{Spring: 0.4}},
	{[]string{"summer"}, Seasonality{Summer: 0.4}},
	{[]string{"fall", "autumn"}, Seasonality{Fall: 0.4}},
	{[]string{"winter"}, Seasonality{Winter: 0.4}},
}

var colorSeasons = []seasonNudge{
	{[]string{"pink", "lavender", "mint", "yellow"}, Seasonality{Spring: 0.1}},
	{[]string{"white", "coral", "turquoise"}, Seasonality{Summer: 0.1}},
	{[]string{"orange", "brown", "burgundy", "olive", "mustard", "rust", "maroon"}, Seasonality{Fall: 0.1}},
	{[]string{"charcoal", "navy", "silver"}, Seasonality{Winter: 0.1}},
}

type patternTerms struct {
	pattern Pattern
	terms   []string
}

var patternVocabulary = []patternTerms{
	{PatternSolid, []string{"solid", "plain"}},
	{PatternStriped, []string{"striped", "stripe", "pinstripe", "pinstriped", "breton"}},
	{PatternChecked, []string{"checked", "check", "gingham", "houndstooth"}},
	{PatternPlaid, []string{"plaid", "tartan"}},
	{PatternFloral, []string{"floral", "flower", "botanical"}},
	{PatternPolkaDot, []string{"polka", "polka-dot", "dotted", "dot"}},
	{PatternAnimal, []string{"leopard", "zebra", "snakeskin", "animal"}},
	{PatternCamo, []string{"camo", "camouflage"}},
	{PatternGraphic, []string{"graphic", "logo", "printed", "print"}},
	{PatternPaisley, []string{"paisley"}},
	{PatternGeo, []string{"geometric", "chevron", "argyle"}},
	{PatternTieDye, []string{"tie-dye", "tie-dyed"}},
}

// subtlePatterns neither help nor hurt versatility.
var subtlePatterns = []Pattern{PatternStriped, PatternChecked}

type fitTerms struct {
	fit   Fit
	terms []string
}

var fitVocabulary = []fitTerms{
	{FitSlim, []string{"slim", "skinny", "slim-fit", "fitted", "tailored"}},
	{FitRelaxed, []string{"relaxed", "loose", "wide-leg"}},
	{FitOversized, []string{"oversized", "baggy", "boxy"}},
	{FitCropped, []string{"cropped", "crop"}},
}

type styleTerms struct {
	style Style
	terms []string
}

var styleVocabulary = []styleTerms{
	{StyleCasual, []string{"casual", "everyday", "relaxed", "t-shirt", "tee", "jeans", "hoodie", "sneaker"}},
	{StyleClassic, []string{"classic", "timeless", "oxford", "loafer", "trench", "cardigan", "chinos", "polo"}},
	{StyleFormal, []string{"formal", "tailored", "suit", "blazer", "gown", "tie", "dress shirt", "elegant", "tuxedo"}},
	{StyleSporty, []string{"sporty", "athletic", "gym", "running", "joggers", "trainer", "leggings", "performance"}},
	{StyleBohemian, []string{"boho", "bohemian", "floral", "maxi", "fringe", "paisley", "peasant", "crochet"}},
	{StyleStreetwear, []string{"streetwear", "graphic", "oversized", "cargo", "bomber", "logo"}},
}

var neutralColors = []string{
	"black", "white", "grey", "navy", "beige", "cream", "tan", "khaki",
	"charcoal", "brown", "ivory", "taupe",
}

var vibrantColors = []string{
	"red", "yellow", "orange", "pink", "purple", "magenta", "fuchsia", "lime",
	"turquoise", "coral",
}

var basicTypes = []string{
	"t-shirt", "tee", "shirt", "jeans", "chinos", "trousers", "pants", "sweater",
	"cardigan", "sneaker", "loafer", "boot", "skirt", "basic",
}

var durableMaterials = []string{"denim", "leather", "wool", "nylon", "polyester", "canvas", "corduroy", "tweed"}

var delicateMaterials = []string{"silk", "cashmere", "velvet", "lace", "satin", "chiffon", "suede"}

// colorFamilies groups hues that read as related when paired.
var colorFamilies = [][]string{
	{"red", "orange", "yellow", "coral", "rust", "mustard", "burgundy", "maroon", "gold", "pink", "magenta", "fuchsia"},
	{"blue", "navy", "teal", "turquoise", "green", "mint", "purple", "lavender", "lime"},
	{"brown", "tan", "beige", "khaki", "olive", "rust", "cream", "taupe", "mustard"},
	{"black", "white", "grey", "charcoal", "silver", "ivory"},
}

var complementaryColors = [][2]string{
	{"red", "green"},
	{"blue", "orange"},
	{"yellow", "purple"},
	{"navy", "tan"},
	{"navy", "khaki"},
	{"teal", "coral"},
	{"burgundy", "olive"},
	{"pink", "mint"},
	{"lavender", "mustard"},
}
