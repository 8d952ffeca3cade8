package predicate

import "strings"

// accentFold maps common accented Latin letters to their plain ASCII
// equivalent. Kept as an explicit table (rather than pulling in a
// Unicode-normalization dependency) since the title alphabet here is a
// small, known set of European-language accents.
var accentFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ä': 'a', 'ã': 'a', 'å': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'ö': 'o', 'õ': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ñ': 'n', 'ç': 'c',
	'Á': 'A', 'À': 'A', 'Â': 'A', 'Ä': 'A', 'Ã': 'A', 'Å': 'A',
	'É': 'E', 'È': 'E', 'Ê': 'E', 'Ë': 'E',
	'Í': 'I', 'Ì': 'I', 'Î': 'I', 'Ï': 'I',
	'Ó': 'O', 'Ò': 'O', 'Ô': 'O', 'Ö': 'O', 'Õ': 'O',
	'Ú': 'U', 'Ù': 'U', 'Û': 'U', 'Ü': 'U',
	'Ý': 'Y',
	'Ñ': 'N', 'Ç': 'C',
}

// leadingArticles are stripped before title-letter bucketing, matching
// spec §4.2's "article-stripped" normalization rule.
var leadingArticles = []string{"the ", "a ", "an ", "le ", "la ", "les ", "un ", "une "}

// NormalizeTitle implements spec §4.2's title normalization: accent
// strip, article strip, alphanumerics only, upper-cased.
func NormalizeTitle(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	for _, article := range leadingArticles {
		if strings.HasPrefix(lower, article) {
			lower = lower[len(article):]
			break
		}
	}

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if folded, ok := accentFold[r]; ok {
			r = folded
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return strings.ToUpper(b.String())
}

// TitleBucket buckets a normalized title's first character into one of
// six ranges (a digit bucket plus five letter ranges), per spec §4.2's
// "A-D/E-H/..." jokers.
func TitleBucket(normalizedTitle string) string {
	if normalizedTitle == "" {
		return ""
	}
	c := normalizedTitle[0]
	switch {
	case c >= '0' && c <= '9':
		return "0-9"
	case c >= 'A' && c <= 'D':
		return "A-D"
	case c >= 'E' && c <= 'H':
		return "E-H"
	case c >= 'I' && c <= 'M':
		return "I-M"
	case c >= 'N' && c <= 'R':
		return "N-R"
	default:
		return "S-Z"
	}
}

// ContainsFold reports whether haystack contains needle, ignoring case.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Region country-code sets for the "country" predicate category
// (spec §4.2: "production countries include code in a regional set").
var (
	RegionAmerican = []string{"US", "CA"}
	RegionFrench   = []string{"FR"}
	RegionEuropean = []string{"FR", "DE", "IT", "ES", "GB", "BE", "NL", "SE", "DK", "NO", "PL", "IE", "AT", "CH", "PT", "FI", "GR"}
	RegionAsian    = []string{"JP", "CN", "KR", "IN", "HK", "TW", "TH", "ID", "PH", "VN", "SG"}
)
