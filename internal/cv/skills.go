package cv

import (
	"regexp"
	"strings"
)

// commonSkills is recovered from raw text even when the lexicon misses it.
// All-caps entries match case-sensitively so "REST" does not fire on "rest".
var commonSkills = []string{
	"Machine Learning", "Deep Learning", "Data Science", "Data Analysis", "Data Analytics",
	"Artificial Intelligence", "Natural Language Processing", "Computer Vision",
	"Cloud Computing", "DevOps", "Microservices", "REST", "GraphQL", "CI/CD", "C++", "C#",
	".NET", "Node.js", "React Native", "Spring Boot", "TensorFlow", "PyTorch", "Pandas",
	"NumPy", "Power BI", "MS Office", "Microsoft Office", "Tally", "Golang", "Rust", "Ruby",
	"PHP", "Scala", "Hadoop", "Apache Spark", "Kafka", "Selenium", "Agile", "Scrum", "JIRA",
	"Digital Marketing", "SEO", "Embedded Systems", "AutoCAD", "SolidWorks", "MATLAB",
}

type skillPattern struct {
	display string
	re      *regexp.Regexp
}

var commonSkillPatterns = compileSkills(commonSkills)

func compileSkills(skills []string) []skillPattern {
	out := make([]skillPattern, 0, len(skills))
	for _, s := range skills {
		flags := "(?i)"
		if strings.ToUpper(s) == s {
			flags = ""
		}
		body := strings.ReplaceAll(regexp.QuoteMeta(s), " ", `\s+`)
		out = append(out, skillPattern{
			display: s,
			re:      regexp.MustCompile(flags + `(?:^|[^A-Za-z0-9+#.])(` + body + `)(?:$|[^A-Za-z0-9+#])`),
		})
	}
	return out
}

var softSkills = []term{
	newTerm("Communication", "communication skills", "संचार", "संवाद"),
	newTerm("Leadership", "नेतृत्व", "नेतृत्त्व"),
	newTerm("Teamwork", "team work", "team player", "टीमवर्क", "टीम वर्क"),
	newTerm("Problem Solving", "problem-solving", "समस्या समाधान"),
	newTerm("Time Management", "time-management", "समय प्रबंधन"),
	newTerm("Critical Thinking"),
	newTerm("Adaptability", "adaptable"),
	newTerm("Creativity", "creative"),
	newTerm("Collaboration", "collaborative"),
	newTerm("Negotiation"),
	newTerm("Public Speaking"),
	newTerm("Decision Making", "decision-making"),
	newTerm("Attention to Detail"),
	newTerm("Customer Service"),
}

// languageNames maps spoken and native spellings to an English display name.
var languageNames = []term{
	newTerm("English", "अंग्रेज़ी", "अंग्रेजी", "इंग्लिश", "ஆங்கிலம்", "ఇంగ్లీష్", "ಇಂಗ್ಲಿಷ್", "ഇംഗ്ലീഷ്", "ইংরেজি", "અંગ્રેજી", "ਅੰਗਰੇਜ਼ੀ", "انگریزی"),
	newTerm("Hindi", "हिंदी", "हिन्दी", "ہندی"),
	newTerm("Marathi", "मराठी"),
	newTerm("Nepali", "नेपाली"),
	newTerm("Tamil", "தமிழ்"),
	newTerm("Telugu", "తెలుగు"),
	newTerm("Kannada", "ಕನ್ನಡ"),
	newTerm("Malayalam", "മലയാളം"),
	newTerm("Bengali", "Bangla", "বাংলা"),
	newTerm("Assamese", "অসমীয়া"),
	newTerm("Gujarati", "ગુજરાતી"),
	newTerm("Punjabi", "ਪੰਜਾਬੀ"),
	newTerm("Urdu", "اردو"),
	newTerm("Odia", "Oriya"),
	newTerm("Sanskrit", "संस्कृत"),
	newTerm("French"),
	newTerm("German"),
	newTerm("Spanish"),
	newTerm("Japanese"),
	newTerm("Arabic"),
}

// languageName returns the display name when text is a language.
func languageName(text string) (string, bool) {
	kt := newKeyedTokens(text)
	if len(kt.tokens) == 0 {
		return "", false
	}
	first, last := kt.tokens[0].Start, kt.tokens[len(kt.tokens)-1].End
	for _, t := range languageNames {
		for _, sp := range kt.find(t) {
			if sp.start == first && sp.end == last {
				return t.display, true
			}
		}
	}
	return "", false
}
