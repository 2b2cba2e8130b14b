package tokenize

// stopwords is the fixed multilingual stopword set from spec.md §4.3.8a,
// transcribed from the original crawler's literal `common_tokens` table
// (English, Spanish, French, German, Italian, Portuguese, Dutch,
// Russian-transliterated, Chinese-pinyin, Japanese-romaji, Turkish,
// Arabic-transliterated, Hindi-transliterated, Polish, Scandinavian,
// Greek-transliterated, plus the integers 0-50, 100, 1000). Duplicate
// entries across languages collapse naturally in the set.
var stopwords = buildStopwordSet()

func buildStopwordSet() map[string]struct{} {
	words := []string{
		// English
		"the", "is", "in", "and", "to", "a", "of", "for", "on", "that", "this", "it", "with",
		"as", "at", "by", "an", "be", "are", "was", "were", "from", "or", "but", "not", "have",
		"has", "had", "will", "would", "can", "could", "should", "do", "does", "did", "so",
		"if", "then", "than", "which", "who", "whom", "whose", "what", "when", "where", "why",
		"how", "about", "all", "any", "each", "few", "more", "most", "other", "some", "such",
		"no", "nor", "only", "own", "same", "too", "very", "just", "over", "under", "again",
		"once", "also", "into", "out", "up", "down", "off", "above", "below", "between", "after",
		"before", "during", "through", "because", "while", "both", "either", "neither", "may",
		"might", "must", "our", "your", "their", "his", "her", "its", "them", "they", "he", "she",
		"we", "you", "i", "me", "my", "mine", "yours", "theirs", "ours", "us",
		"him", "hers", "himself", "herself", "itself", "themselves", "ourselves", "yourself",
		"yourselves", "am", "shall",
		// Numbers
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12", "13", "14", "15", "16", "17", "18", "19", "20",
		"21", "22", "23", "24", "25", "26", "27", "28", "29", "30", "31", "32", "33", "34", "35", "36", "37", "38", "39", "40",
		"41", "42", "43", "44", "45", "46", "47", "48", "49", "50", "100", "1000",
		// Spanish
		"el", "la", "los", "las", "un", "una", "unos", "unas", "de", "del", "al", "y", "o", "u", "en", "con", "por", "para",
		"es", "que", "se", "sí", "su", "sus", "le", "lo", "como", "más", "pero", "ya", "muy", "sin", "sobre",
		"entre", "también", "hasta", "desde", "todo", "todos", "todas", "toda", "mi", "mis", "tu", "tus",
		"este", "esta", "estos", "estas", "ese", "esa", "esos", "esas", "aquel", "aquella", "aquellos", "aquellas",
		"yo", "tú", "él", "ella", "nosotros", "vosotros", "ellos", "ellas", "nos", "os", "les",
		// French
		"le", "les", "une", "des", "du", "et", "à", "au", "aux", "pour", "par", "sur", "dans",
		"est", "ce", "cette", "ces", "il", "elle", "ils", "elles", "vous", "tu", "je", "te", "leur",
		"lui", "son", "sa", "ses", "mon", "ma", "mes", "ton", "ta", "tes", "notre", "votre", "vos", "leurs",
		"qui", "quoi", "dont", "où", "quand", "comment", "pourquoi", "avec", "sans", "sous", "aussi",
		"plus", "moins", "très", "bien", "mal", "mais", "donc", "ni", "car",
		// German
		"der", "die", "das", "ein", "eine", "einer", "eines", "einem", "einen", "und", "oder", "aber", "den", "dem", "des",
		"zu", "mit", "auf", "für", "von", "an", "im", "am", "aus", "bei", "nach", "über", "unter", "vor", "zwischen",
		"ist", "war", "sind", "sein", "hat", "haben", "wird", "werden", "nicht", "kein", "keine", "mehr", "weniger", "auch",
		"nur", "schon", "noch", "immer", "man", "wir", "ihr", "sie", "er", "es", "ich", "du", "mein", "dein",
		"unser", "euer", "dies", "diese", "dieser", "dieses", "jener", "jene", "jenes",
		// Italian
		"il", "gli", "i", "uno", "dei", "delle", "degli", "della", "dello",
		"e", "ma", "tra", "fra", "di", "da", "ai", "agli", "alla", "alle", "allo",
		"che", "chi", "cui", "quando", "dove", "perché", "quale", "quali", "questo", "questa", "questi", "queste",
		"quello", "quella", "quelli", "quelle", "io", "noi", "voi", "ti", "si", "ci", "vi",
		// Portuguese
		"o", "os", "um", "uma", "uns", "umas", "do", "da", "dos", "das", "no", "na", "nos", "nas",
		"já", "ainda", "meu", "minha", "meus", "minhas", "teu", "tua", "teus", "tuas",
		"seu", "sua", "seus", "suas", "nosso", "nossa", "nossos", "nossas", "vosso", "vossa", "vossos", "vossas", "ele", "ela",
		"eles", "elas", "nós", "vós", "eu", "você", "vocês", "lhe", "lhes",
		// Dutch
		"het", "een", "of", "maar", "want", "dus", "voor", "na", "met", "zonder", "onder", "tussen",
		"op", "aan", "bij", "tot", "van", "uit", "door", "om", "als", "dan", "dat", "dit", "deze",
		"wie", "wat", "waar", "wanneer", "hoe", "waarom", "welke", "wij", "jij", "hij", "zij", "je",
		"mijn", "jouw", "zijn", "haar", "ons", "onze", "hun", "uw", "ze", "men", "er", "hier", "daar",
		// Russian (transliterated)
		"net", "da", "on", "ona", "ono", "oni", "my", "vy", "ty", "ya", "moy", "tvoy", "ego", "ee", "nas",
		"vas", "ikh", "kto", "chto", "gde", "kogda", "pochemu", "kak", "eto", "v", "s", "k", "po", "za", "ot",
		"iz", "u", "nad", "pod", "pervyy", "vtoroy", "odin", "dva", "tri", "chetyre", "pyat", "shest", "sem", "vosem",
		"devyat", "desyat", "bolshe", "menshe", "vse", "vsyo", "vsego", "tak", "zdes", "tam", "tut", "to",
		// Chinese (pinyin)
		"shi", "bu", "zai", "ren", "wo", "ni", "ta", "men", "zhe", "na", "yi", "ge", "you", "he", "ye", "ma",
		"ba", "ne", "li", "dui", "dao", "shang", "xia",
		// Japanese (romaji)
		"ni", "wa", "ga", "wo", "mo", "kara", "made", "yori", "e", "ka", "yo", "kore", "sore", "are",
		"dore", "kono", "sono", "ano", "dono", "watashi", "anata", "kare", "kanojo", "watashitachi", "anatatachi", "karera",
		"kanojotachi", "koko", "soko", "asoko", "doko", "itsu", "dare", "nani", "nan", "ikutsu", "ikura", "doushite", "dou",
		// Turkish
		"ve", "bir", "için", "ile", "ama", "veya", "çok", "az", "daha", "gibi", "mi",
		"mu", "mü", "ben", "sen", "biz", "siz", "şu", "şey", "her", "hiç", "bazı",
		// Arabic (transliterated)
		"fi", "min", "ila", "ala", "la", "huwa", "hiya", "anta", "anti", "nahnu", "antum", "antunna",
		"hum", "hunna", "hadha", "hadhi", "dhalika", "tilka", "huna", "hunaka", "ayna", "mata", "kayfa", "limadha",
		// Hindi (transliterated)
		"hai", "ka", "ki", "ke", "mein", "par", "aur", "ya", "lekin", "bhi", "ko", "se", "tak", "tum", "main",
		"vah", "yeh", "ham", "aap", "unka",
		// Polish
		"w", "na", "z", "do", "za", "po", "przez", "dla", "od", "bez", "pod", "nad", "przy", "między",
		"jest", "być", "był", "była", "było", "byli", "były", "ten", "ta", "to", "ci", "te", "tam", "tu", "kto",
		"co", "gdzie", "kiedy", "jak", "dlaczego", "który", "która", "które", "którzy",
		// Scandinavian
		"och", "att", "det", "som", "en", "ett", "den", "de", "på", "av", "med", "till", "för", "från", "är", "var", "har",
		"hade", "inte", "men", "om", "eller", "så", "vi", "ni", "han", "hon", "jag", "mig", "dig",
		// Greek (transliterated)
		"kai", "se", "apo", "me", "gia", "os", "stin",
	}

	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// isStopword reports whether token (expected already lowercased) is in the
// fixed multilingual stopword set.
func isStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}
