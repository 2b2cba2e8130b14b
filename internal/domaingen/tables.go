package domaingen

// tlds, prefixes and words are the fixed input lists spec.md §4.5 names:
// "prefixes (~60 strings), words (~400 strings), tlds (~100 strings)".
// Transcribed verbatim from the combinatorial domain generator in the
// original Rust runner this spec was distilled from.
var tlds = []string{
	"com", "net", "org", "io", "co", "ai", "dev", "app", "info", "biz",
	"us", "uk", "ca", "de", "jp", "fr", "au", "ru", "ch", "it",
	"nl", "se", "no", "es", "cz", "in", "br", "pl", "me", "tv",
	"xyz", "site", "online", "store", "tech", "pro", "club", "top", "vip", "live",
	"news", "cloud", "fun", "world", "today", "agency", "solutions", "digital", "media", "group",
	"center", "systems", "works", "company", "services", "network", "consulting", "support", "software", "design",
	"studio", "marketing", "events", "finance", "capital", "ventures", "partners", "law", "legal", "health",
	"care", "doctor", "clinic", "school", "academy", "education", "university", "college", "gov", "mil",
	"int", "edu", "museum", "travel", "jobs", "mobi", "name", "coop", "aero", "arpa",
}

var prefixes = []string{
	"www", "mail", "blog", "shop", "store", "news", "app", "api", "dev", "test",
	"portal", "home", "web", "en", "es", "fr", "de", "it", "pt", "jp",
	"cn", "ru", "in", "us", "uk", "ca", "au", "br", "mx", "za",
	"nl", "se", "no", "fi", "dk", "pl", "cz", "tr", "kr", "id",
	"vn", "th", "my", "sg", "hk", "tw", "il", "ae", "sa", "ir",
	"eg", "ng", "ke", "gh", "ar", "cl", "co", "pe", "ve",
}

var words = []string{
	"google", "facebook", "youtube", "twitter", "instagram", "wikipedia",
	"amazon", "reddit", "yahoo", "linkedin", "netflix", "microsoft",
	"apple", "github", "stackoverflow", "wordpress", "blogspot",
	"tumblr", "pinterest", "paypal", "dropbox", "adobe", "slack",
	"zoom", "twitch", "ebay", "bing", "duckduckgo", "quora", "imdb",
	"bbc", "cnn", "nytimes", "forbes", "weather", "booking", "airbnb",
	"uber", "lyft", "spotify", "soundcloud", "medium", "vimeo", "flickr",
	"news", "sports", "games", "movies", "music", "photos", "video", "live",
	"shop", "store", "market", "sale", "deal", "offer", "buy", "sell",
	"jobs", "career", "work", "hire", "resume", "apply", "school", "college",
	"university", "learn", "study", "teach", "class", "course", "academy",
	"health", "doctor", "clinic", "hospital", "care", "med", "pharmacy",
	"finance", "bank", "money", "loan", "credit", "card", "pay", "fund",
	"insurance", "tax", "invest", "trade", "stock", "crypto", "bitcoin",
	"weather", "travel", "trip", "flight", "hotel", "car", "rent", "map",
	"food", "pizza", "burger", "cafe", "bar", "restaurant", "menu", "order",
	"blog", "forum", "chat", "mail", "email", "message", "note", "wiki",
	"photo", "pic", "image", "gallery", "album", "camera", "snap", "art",
	"design", "dev", "code", "app", "site", "web", "cloud", "host", "server",
	"data", "ai", "bot", "robot", "smart", "tech", "digital", "media",
	"news", "press", "report", "story", "magazine", "journal", "book",
	"library", "archive", "docs", "file", "pdf", "doc", "sheet", "slide",
	"event", "meet", "party", "club", "group", "team", "community", "social",
	"network", "connect", "link", "share", "like", "follow", "friend",
	"support", "help", "faq", "guide", "info", "about", "contact", "home",
	"login", "signup", "register", "account", "profile", "user", "admin",
	"dashboard", "panel", "console", "system", "manager", "control", "settings",
	"tools", "tool", "kit", "box", "lab", "test", "beta", "demo", "sample",
	"random", "fun", "play", "game", "quiz", "test", "try", "beta", "alpha",
	"pro", "plus", "max", "prime", "vip", "elite", "gold", "silver", "basic",
	"free", "cheap", "deal", "sale", "discount", "offer", "promo", "gift",
	"shop", "store", "cart", "checkout", "buy", "sell", "order", "track",
	"review", "rate", "star", "top", "best", "hot", "new", "now", "today",
	"fast", "quick", "easy", "simple", "safe", "secure", "trusted", "official",
	"global", "world", "local", "city", "town", "village", "place", "zone",
	"area", "region", "state", "country", "nation", "gov", "org", "edu",
	"science", "math", "physics", "chemistry", "bio", "earth", "space",
	"astro", "geo", "eco", "env", "nature", "animal", "plant", "tree",
	"flower", "garden", "farm", "pet", "dog", "cat", "fish", "bird", "horse",
	"car", "bike", "bus", "train", "plane", "boat", "ship", "auto", "motor",
	"drive", "ride", "fly", "move", "run", "walk", "jump", "swim", "climb",
	"build", "make", "create", "craft", "draw", "paint", "write", "read",
	"speak", "talk", "listen", "hear", "see", "watch", "look", "view",
	"open", "close", "start", "stop", "go", "come", "join", "leave", "exit",
	"enter", "begin", "end", "finish", "win", "lose", "score", "goal",
	"plan", "project", "task", "todo", "list", "note", "memo", "remind",
	"alert", "alarm", "clock", "time", "date", "calendar", "schedule",
	"event", "meet", "call", "video", "voice", "chat", "message", "mail",
	"email", "post", "tweet", "blog", "forum", "board", "thread", "topic",
	"news", "press", "media", "tv", "radio", "movie", "film", "show",
	"music", "song", "album", "band", "artist", "dj", "mix", "play", "pause",
	"stop", "record", "edit", "cut", "copy", "paste", "save", "load",
	"send", "receive", "upload", "download", "sync", "backup", "restore",
	"scan", "print", "fax", "copy", "photo", "pic", "image", "video",
	"camera", "lens", "screen", "display", "monitor", "tv", "projector",
	"light", "lamp", "bulb", "fan", "ac", "heater", "fridge", "oven",
	"microwave", "washer", "dryer", "vacuum", "cleaner", "robot", "drone",
	"sensor", "alarm", "lock", "key", "door", "gate", "window", "wall",
	"roof", "floor", "room", "house", "home", "apartment", "flat", "villa",
	"hotel", "motel", "inn", "resort", "camp", "tent", "cabin", "hostel",
	"office", "desk", "chair", "table", "sofa", "bed", "bath", "toilet",
	"kitchen", "cook", "chef", "food", "meal", "dish", "snack", "drink",
	"water", "juice", "milk", "tea", "coffee", "beer", "wine", "bar",
	"pub", "club", "party", "event", "festival", "concert", "show",
	"exhibit", "expo", "fair", "market", "shop", "store", "mall", "plaza",
	"park", "garden", "zoo", "museum", "gallery", "library", "theater",
	"cinema", "stadium", "arena", "gym", "pool", "court", "field", "track",
	"ring", "course", "trail", "road", "street", "avenue", "boulevard",
	"drive", "lane", "way", "path", "route", "highway", "freeway", "bridge",
	"tunnel", "station", "stop", "terminal", "port", "harbor", "dock",
	"airport", "runway", "tower", "building", "block", "lot", "yard",
	"garden", "farm", "field", "forest", "mountain", "hill", "valley",
	"lake", "river", "sea", "ocean", "beach", "island", "bay", "coast",
	"shore", "cliff", "cave", "desert", "plain", "plateau", "volcano",
	"glacier", "reef", "coral", "delta", "marsh", "swamp", "pond", "pool",
	"spring", "well", "fountain", "waterfall", "cascade", "geyser",
}
