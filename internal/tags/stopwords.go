package tags

// stopWords holds common English function words plus photography and
// AI-generation boilerplate that carries no tagging signal.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true, "was": true,
	"are": true, "were": true, "been": true, "be": true, "have": true,
	"has": true, "had": true, "do": true, "does": true, "did": true,
	"will": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "must": true, "shall": true, "can": true, "need": true,
	"dare": true, "ought": true, "used": true, "it": true, "its": true,
	"this": true, "that": true, "these": true, "those": true, "i": true,
	"you": true, "he": true, "she": true, "we": true, "they": true,
	"what": true, "which": true, "who": true, "whom": true, "whose": true,
	"where": true, "when": true, "why": true, "how": true, "all": true,
	"each": true, "every": true, "both": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "such": true, "no": true,
	"nor": true, "not": true, "only": true, "own": true, "same": true,
	"so": true, "than": true, "too": true, "very": true, "just": true,
	"also": true, "now": true, "here": true, "there": true, "then": true,
	"once": true, "if": true, "because": true, "until": true, "while": true,
	"about": true, "against": true, "between": true, "into": true,
	"through": true, "during": true, "before": true, "after": true,
	"above": true, "below": true, "up": true, "down": true, "out": true,
	"off": true, "over": true, "under": true, "again": true, "further": true,
	"being": true, "having": true, "doing": true, "get": true, "got": true,
	"showing": true, "capturing": true, "featuring": true, "depicting": true,
	"displaying": true, "com": true, "www": true, "http": true, "https": true,
	"jpg": true, "png": true, "image": true, "photo": true,
	"photograph": true, "picture": true, "shot": true, "taken": true,
	"camera": true, "lens": true, "looking": true, "seen": true, "view": true,
	"scene": true, "type": true, "style": true, "aesthetic": true,
	"vibe": true, "one": true, "two": true, "three": true, "four": true,
	"five": true, "using": true, "without": true, "based": true,
	"inspired": true, "render": true, "generated": true, "created": true,
	"made": true, "digital": true, "art": true, "artwork": true,
	"illustration": true, "portrait": true, "background": true,
	"foreground": true, "middle": true, "center": true, "side": true,
	"left": true, "right": true, "top": true, "bottom": true, "front": true,
	"back": true, "behind": true, "around": true, "near": true,
	"close": true, "far": true,
}

// styleIndicators are terms considered more taggable than ordinary nouns;
// they jump to the front of the tag list.
var styleIndicators = map[string]bool{
	"cinematic": true, "dramatic": true, "moody": true, "soft": true,
	"hard": true, "bright": true, "dark": true, "light": true,
	"vintage": true, "retro": true, "modern": true, "classic": true,
	"minimal": true, "detailed": true, "simple": true, "complex": true,
	"realistic": true, "stylized": true, "abstract": true, "surreal": true,
	"dreamy": true, "ethereal": true, "atmospheric": true, "textured": true,
	"grainy": true, "noir": true, "sepia": true, "monochrome": true,
	"colorful": true, "vibrant": true, "muted": true, "pastel": true,
	"neon": true, "warm": true, "cool": true, "natural": true,
	"artificial": true,
}
