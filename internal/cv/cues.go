package cv

import (
	"regexp"
	"strings"
)

// cueSource lists the phrases the mapper looks for in one language.
type cueSource struct {
	summary      []string
	names        []string // patterns; group 1 is the name
	positions    []string
	institutions []string
	companies    []string // patterns; group 1 is the company
	suffixes     []string // corporate suffix patterns; group 1 is the company
	fields       []string
}

// cues is the compiled form of a language's cueSource merged with English,
// since transcripts are routinely code-mixed.
type cues struct {
	summary        []term
	names          []*regexp.Regexp
	position       *regexp.Regexp
	institutions   []term
	institutionRes []*regexp.Regexp
	companies      []*regexp.Regexp
	suffixes       []*regexp.Regexp
	field          *regexp.Regexp
}

// capitalisedWord allows inner dots ("Amazon.com") but never a trailing one,
// so a name cannot run across a sentence break.
const (
	capitalisedWord = `[A-Z][A-Za-z0-9&'+#-]*(?:\.[A-Za-z0-9]+)*`
	capitalised     = capitalisedWord + `(?:\s+` + capitalisedWord + `){0,3}`
)

var english = cueSource{
	summary: []string{
		"experienced", "experience", "passionate", "professional", "years of experience",
		"specialize", "specialise", "specialized", "expertise", "expert", "skilled",
		"motivated", "background", "objective", "summary", "i have",
	},
	names: []string{
		`(?i:\b(?:my name is|myself|i am|i'm|this is)\s+)([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})`,
	},
	institutions: []string{
		"university", "college", "institute", "school", "academy", "polytechnic",
		"iit", "iim", "nit", "vidyalaya", "vidyapeeth",
	},
	companies: []string{
		`(?i:\b(?:worked|working|work|employed|interned|interning|job)\s+(?:at|for|by)\s+)(` + capitalised + `)`,
		`(?i:\bjoined\s+)(` + capitalised + `)`,
		`(?i:\bcompany(?:\s+name)?\s*(?::|is|was|-)\s*)(` + capitalised + `)`,
	},
	suffixes: []string{
		`\b((?:[A-Z][A-Za-z0-9&'-]*\s+){1,3}(?:Ltd|Limited|Pvt|Private Limited|Technologies|Solutions|Systems|Inc|Corp|Corporation|Labs|Consultancy)\b)`,
	},
	fields: []string{
		"computer science", "computer engineering", "information technology", "electronics",
		"electrical engineering", "mechanical engineering", "civil engineering",
		"chemical engineering", "commerce", "economics", "mathematics", "statistics",
		"physics", "chemistry", "biology", "biotechnology", "business administration",
		"finance", "marketing", "accounting", "psychology", "english literature", "law",
		"data science", "artificial intelligence",
	},
}

// englishPosition allows up to two modifiers before the role noun.
const englishPosition = `(?i)\b(?:(?:senior|junior|lead|principal|chief|associate|assistant|staff|` +
	`software|data|project|product|program|business|sales|marketing|hr|web|mobile|cloud|devops|` +
	`backend|frontend|full[- ]stack|qa|test|network|system|systems|civil|mechanical|electrical|` +
	`research|technical|operations|account|finance)\s+){0,2}` +
	`(?:engineer|manager|developer|analyst|consultant|designer|architect|intern|tester|` +
	`administrator|accountant|teacher|lecturer|professor|scientist|executive|officer|director|` +
	`programmer|specialist|coordinator|supervisor|technician)s?\b`

// englishInstitution keeps "University of Mumbai" together.
const englishInstitution = `(?i:\b(?:studied|studying|graduated|graduating|completed|from|at)\s+(?:at\s+|from\s+)?(?:the\s+)?)` +
	`((?:[A-Z][A-Za-z.&'-]*\s+){0,4}(?:University|College|Institute|School|Academy|Polytechnic)` +
	`(?:\s+of(?:\s+[A-Z][A-Za-z&'-]*){1,3})?)`

var cueSources = map[string]cueSource{
	"hi": {
		summary:      []string{"अनुभव", "अनुभवी", "विशेषज्ञ", "पेशेवर", "लक्ष्य", "कुशल"},
		names:        []string{`मेरा नाम\s+(\S+(?:\s+\S+)?)\s+(?:है|हैं)`},
		positions:    []string{"इंजीनियर", "मैनेजर", "डेवलपर", "विश्लेषक", "सलाहकार", "प्रबंधक", "शिक्षक", "अभियंता"},
		institutions: []string{"विश्वविद्यालय", "कॉलेज", "महाविद्यालय", "संस्थान", "विद्यालय"},
		companies:    []string{`(\S+)\s+(?:में काम|में नौकरी|कंपनी में)`},
		fields:       []string{"कंप्यूटर साइंस", "कंप्यूटर विज्ञान", "वाणिज्य", "विज्ञान", "कला", "अर्थशास्त्र"},
	},
	"mr": {
		summary:      []string{"अनुभव", "अनुभवी", "तज्ञ", "कुशल"},
		names:        []string{`माझे नाव\s+(\S+(?:\s+\S+)?)\s+आहे`},
		positions:    []string{"अभियंता", "व्यवस्थापक", "विकसक", "सल्लागार", "इंजिनिअर", "शिक्षक"},
		institutions: []string{"विद्यापीठ", "महाविद्यालय", "कॉलेज", "संस्था"},
		companies:    []string{`(\S+)\s+(?:मध्ये काम|कंपनीत)`},
		fields:       []string{"संगणक शास्त्र", "वाणिज्य", "विज्ञान", "कला"},
	},
	"ne": {
		summary:      []string{"अनुभव", "अनुभवी", "विज्ञ", "दक्ष"},
		names:        []string{`मेरो नाम\s+(\S+(?:\s+\S+)?)\s+हो`},
		positions:    []string{"इन्जिनियर", "व्यवस्थापक", "सल्लाहकार", "शिक्षक"},
		institutions: []string{"विश्वविद्यालय", "कलेज", "संस्थान", "विद्यालय"},
	},
	"ta": {
		summary:      []string{"அனுபவம்", "அனுபவ", "நிபுணர்", "திறமை"},
		names:        []string{`என் பெயர்\s+(\S+(?:\s+\S+)?)`},
		positions:    []string{"பொறியாளர்", "மேலாளர்", "டெவலப்பர்", "ஆலோசகர்", "ஆசிரியர்"},
		institutions: []string{"பல்கலைக்கழக", "கல்லூரி", "பள்ளி"},
		companies:    []string{`(\S+)\s+நிறுவனத்தில்`},
	},
	"te": {
		summary:      []string{"అనుభవం", "అనుభవ", "నిపుణుడు", "నైపుణ్యం"},
		names:        []string{`నా పేరు\s+(\S+(?:\s+\S+)?)`},
		positions:    []string{"ఇంజనీర్", "మేనేజర్", "డెవలపర్", "సలహాదారు", "ఉపాధ్యాయుడు"},
		institutions: []string{"విశ్వవిద్యాలయ", "కళాశాల", "పాఠశాల"},
		companies:    []string{`(\S+)\s+కంపెనీలో`},
	},
	"kn": {
		summary:      []string{"ಅನುಭವ", "ಪರಿಣತ", "ಕೌಶಲ್ಯ"},
		names:        []string{`ನನ್ನ ಹೆಸರು\s+(\S+(?:\s+\S+)?)`},
		positions:    []string{"ಇಂಜಿನಿಯರ್", "ವ್ಯವಸ್ಥಾಪಕ", "ಡೆವಲಪರ್", "ಸಲಹೆಗಾರ", "ಶಿಕ್ಷಕ"},
		institutions: []string{"ವಿಶ್ವವಿದ್ಯಾಲಯ", "ಕಾಲೇಜು", "ಶಾಲೆ"},
	},
	"ml": {
		summary:      []string{"പരിചയ", "വിദഗ്ധ", "നൈപുണ്യ"},
		names:        []string{`എന്റെ പേര്\s+(\S+(?:\s+\S+)?)`},
		positions:    []string{"എഞ്ചിനീയർ", "മാനേജർ", "ഡെവലപ്പർ", "കൺസൾട്ടന്റ്", "അധ്യാപക"},
		institutions: []string{"സർവകലാശാല", "കോളേജ്", "സ്കൂൾ"},
	},
	"bn": {
		summary:      []string{"অভিজ্ঞতা", "অভিজ্ঞ", "দক্ষ"},
		names:        []string{`আমার নাম\s+(\S+(?:\s+\S+)?)`},
		positions:    []string{"ইঞ্জিনিয়ার", "ম্যানেজার", "ডেভেলপার", "পরামর্শদাতা", "শিক্ষক"},
		institutions: []string{"বিশ্ববিদ্যালয়", "কলেজ", "বিদ্যালয়"},
		companies:    []string{`(\S+)\s+কোম্পানিতে`},
	},
	"as": {
		summary:      []string{"অভিজ্ঞতা", "দক্ষ"},
		names:        []string{`মোৰ নাম\s+(\S+(?:\s+\S+)?)`},
		positions:    []string{"অভিযন্তা", "পৰিচালক", "শিক্ষক"},
		institutions: []string{"বিশ্ববিদ্যালয়", "মহাবিদ্যালয়", "বিদ্যালয়"},
	},
	"gu": {
		summary:      []string{"અનુભવ", "નિષ્ણાત", "કુશળ"},
		names:        []string{`મારું નામ\s+(\S+(?:\s+\S+)?)\s+છે`},
		positions:    []string{"એન્જિનિયર", "મેનેજર", "ડેવલપર", "સલાહકાર", "શિક્ષક"},
		institutions: []string{"યુનિવર્સિટી", "કોલેજ", "વિદ્યાલય"},
	},
	"pa": {
		summary:      []string{"ਤਜਰਬਾ", "ਤਜਰਬੇ", "ਮਾਹਰ"},
		names:        []string{`ਮੇਰਾ ਨਾਮ\s+(\S+(?:\s+\S+)?)\s+ਹੈ`},
		positions:    []string{"ਇੰਜੀਨੀਅਰ", "ਮੈਨੇਜਰ", "ਡਿਵੈਲਪਰ", "ਸਲਾਹਕਾਰ", "ਅਧਿਆਪਕ"},
		institutions: []string{"ਯੂਨੀਵਰਸਿਟੀ", "ਕਾਲਜ", "ਸਕੂਲ"},
	},
	"ur": {
		summary:      []string{"تجربہ", "تجربے", "ماہر"},
		names:        []string{`میرا نام\s+(\S+(?:\s+\S+)?)\s+ہے`},
		positions:    []string{"انجینئر", "مینیجر", "ڈویلپر", "مشیر", "استاد"},
		institutions: []string{"یونیورسٹی", "کالج", "اسکول"},
	},
}

var compiledCues = compileCues()

func compileCues() map[string]*cues {
	out := map[string]*cues{"en": buildCues(english, englishPosition)}
	for lang, src := range cueSources {
		out[lang] = buildCues(english, englishPosition, src)
	}
	return out
}

// buildCues merges sources and compiles them. The first source is always
// English; position is its role-noun pattern.
func buildCues(base cueSource, position string, extra ...cueSource) *cues {
	c := &cues{}
	var positions []string
	all := append([]cueSource{base}, extra...)
	for _, src := range all {
		for _, s := range src.summary {
			c.summary = append(c.summary, newTerm(s))
		}
		for _, p := range src.names {
			c.names = append(c.names, regexp.MustCompile(p))
		}
		for _, s := range src.institutions {
			c.institutions = append(c.institutions, newTerm(s))
		}
		for _, p := range src.companies {
			c.companies = append(c.companies, regexp.MustCompile(p))
		}
		for _, p := range src.suffixes {
			c.suffixes = append(c.suffixes, regexp.MustCompile(p))
		}
		positions = append(positions, src.positions...)
	}

	c.institutionRes = append(c.institutionRes, regexp.MustCompile(englishInstitution))
	for _, src := range extra {
		if len(src.institutions) == 0 {
			continue
		}
		// One preceding word plus the keyword and any case suffix.
		c.institutionRes = append(c.institutionRes, regexp.MustCompile(
			`(\S+\s+(?:`+quoteAll(src.institutions)+`)\S*)`))
	}

	patterns := []string{}
	if position != "" {
		patterns = append(patterns, position)
	}
	if len(positions) > 0 {
		patterns = append(patterns, compileTerms(positions, true).String())
	}
	if len(patterns) > 0 {
		c.position = regexp.MustCompile(strings.Join(patterns, "|"))
	}

	var fields []string
	for _, src := range all {
		fields = append(fields, src.fields...)
	}
	if len(fields) > 0 {
		c.field = compileTerms(fields, true)
	}
	return c
}

func quoteAll(words []string) string {
	q := make([]string, len(words))
	for i, w := range words {
		q[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(q, "|")
}

// cuesFor returns the compiled cues for lang; unknown languages get English.
func cuesFor(lang string) *cues {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	if c, ok := compiledCues[lang]; ok {
		return c
	}
	return compiledCues["en"]
}
