package gazetteer

var builtin = New(builtinSources())

// common holds terms that are spoken the same way across languages in
// code-mixed transcripts: technology names, degree abbreviations, employers.
var common = Source{
	Titles:   []string{"Mr", "Mrs", "Ms", "Miss", "Dr", "Prof", "Shri", "Smt", "Sri"},
	Surnames: []string{"Kumar", "Sharma", "Singh", "Verma", "Gupta", "Patel", "Reddy", "Iyer", "Nair", "Das", "Khan", "Joshi", "Mehta", "Rao", "Pillai", "Banerjee", "Chatterjee", "Mukherjee", "Agarwal", "Yadav", "Shah", "Desai", "Menon", "Naidu", "Ahmed"},
	Organizations: []string{
		"University", "College", "Institute", "School", "Academy", "Ltd", "Limited",
		"Pvt", "Inc", "Corp", "Corporation", "Technologies", "Solutions", "Systems",
		"Labs", "Bank", "Hospital", "Foundation", "IIT", "IIM", "NIT",
	},
	Companies: []string{
		"Google", "Microsoft", "Amazon", "Infosys", "Wipro", "TCS", "Accenture", "IBM",
		"Cognizant", "Capgemini", "Deloitte", "Flipkart", "Paytm", "Zomato", "Swiggy",
		"Oracle", "Adobe", "Meta", "Facebook", "Apple", "Reliance", "HCL", "Tata Consultancy Services",
		"Tech Mahindra", "HDFC", "ICICI", "Ola", "Byju's",
	},
	Cities: []string{
		"Delhi", "New Delhi", "Mumbai", "Bangalore", "Bengaluru", "Chennai", "Kolkata",
		"Hyderabad", "Pune", "Ahmedabad", "Jaipur", "Lucknow", "Kochi", "Noida", "Gurgaon",
		"Gurugram", "Chandigarh", "Indore", "Bhopal", "Nagpur", "Patna", "Surat", "Mysore",
		"Coimbatore", "Trivandrum", "Visakhapatnam", "Lahore", "Karachi", "Dhaka", "Kathmandu",
		"London", "Singapore", "Dubai",
	},
	States: []string{
		"Maharashtra", "Karnataka", "Kerala", "Gujarat", "Punjab", "Rajasthan", "Bihar",
		"Telangana", "Odisha", "Assam", "Haryana", "Goa", "Tamil Nadu", "Uttar Pradesh",
		"Madhya Pradesh", "Andhra Pradesh", "West Bengal",
	},
	Skills: []string{
		"Python", "Java", "JavaScript", "TypeScript", "Golang", "SQL", "React",
		"Angular", "Vue", "Node.js", "Docker", "Kubernetes", "AWS", "Azure", "GCP", "Linux",
		"Git", "Excel", "Tableau", "PowerBI", "MongoDB", "PostgreSQL", "MySQL", "Redis",
		"Django", "Flask", "HTML", "CSS", "Kotlin", "Swift", "Android",
		"Figma", "Photoshop", "AutoCAD", "SAP", "Salesforce", "Jenkins", "Terraform",
		"English", "Hindi", "Tamil", "Telugu", "Kannada", "Malayalam", "Bengali", "Marathi",
		"Gujarati", "Punjabi", "Urdu", "Nepali", "Assamese",
	},
	Education: []string{
		"BTech", "B.Tech", "MTech", "M.Tech", "BSc", "B.Sc", "MSc", "M.Sc",
		"BCA", "MCA", "BBA", "MBA", "BCom", "B.Com", "MCom", "PhD", "Ph.D",
		"Diploma", "Bachelor", "Bachelors", "Master", "Masters", "Graduate", "Postgraduate",
		"HSC", "SSC", "CBSE", "ICSE", "Degree",
	},
	Months: []string{
		"January", "February", "March", "April", "May", "June", "July", "August",
		"September", "October", "November", "December", "Jan", "Feb", "Mar", "Apr",
		"Jun", "Jul", "Aug", "Sep", "Sept", "Oct", "Nov", "Dec",
	},
}

func builtinSources() map[string]Source {
	specific := map[string]Source{
		"en": {
			Organizations: []string{"Company", "Agency", "Group", "Enterprises", "Consultancy"},
			DateWords:     []string{"today", "yesterday", "tomorrow", "present", "currently"},
			Prepositions:  []string{"in", "at", "from", "near"},
		},
		"hi": {
			Titles:        []string{"श्री", "श्रीमती", "सुश्री", "डॉ", "डॉक्टर", "कुमारी"},
			Surnames:      []string{"कुमार", "शर्मा", "सिंह", "वर्मा", "गुप्ता", "पटेल", "यादव", "जोशी", "मिश्रा", "तिवारी", "पांडे", "खान"},
			Organizations: []string{"विश्वविद्यालय", "कॉलेज", "महाविद्यालय", "संस्थान", "विद्यालय", "कंपनी", "लिमिटेड", "बैंक"},
			Companies:     []string{"इंफोसिस", "विप्रो", "गूगल", "माइक्रोसॉफ्ट", "अमेज़न", "टीसीएस"},
			Cities:        []string{"दिल्ली", "नई दिल्ली", "मुंबई", "बेंगलुरु", "चेन्नई", "कोलकाता", "हैदराबाद", "पुणे", "जयपुर", "लखनऊ", "पटना", "भोपाल", "इंदौर", "नोएडा"},
			States:        []string{"महाराष्ट्र", "कर्नाटक", "बिहार", "राजस्थान", "गुजरात", "पंजाब", "केरल", "उत्तर प्रदेश", "मध्य प्रदेश"},
			Skills:        []string{"पायथन", "जावा", "एक्सेल", "अंग्रेज़ी", "हिंदी"},
			Education:     []string{"स्नातक", "परास्नातक", "डिग्री", "डिप्लोमा", "बीटेक", "एमबीए", "बीए", "एमए", "पीएचडी"},
			DateWords:     []string{"आज", "कल", "परसों", "साल", "वर्ष", "महीने", "वर्तमान"},
			Months:        []string{"जनवरी", "फरवरी", "मार्च", "अप्रैल", "मई", "जून", "जुलाई", "अगस्त", "सितंबर", "अक्टूबर", "नवंबर", "दिसंबर"},
			Postpositions: []string{"में", "से", "पर"},
		},
		"mr": {
			Titles:        []string{"श्री", "श्रीमती", "डॉ"},
			Surnames:      []string{"पाटील", "देशमुख", "कुलकर्णी", "जोशी", "पवार", "शिंदे"},
			Organizations: []string{"विद्यापीठ", "महाविद्यालय", "संस्था", "कंपनी"},
			Cities:        []string{"मुंबई", "पुणे", "नागपूर", "नाशिक", "औरंगाबाद", "कोल्हापूर"},
			States:        []string{"महाराष्ट्र", "गोवा"},
			Education:     []string{"पदवी", "पदव्युत्तर", "पदविका"},
			DateWords:     []string{"आज", "काल", "उद्या", "वर्ष"},
			Months:        []string{"जानेवारी", "फेब्रुवारी", "मार्च", "एप्रिल", "मे", "जून", "जुलै", "ऑगस्ट", "सप्टेंबर", "ऑक्टोबर", "नोव्हेंबर", "डिसेंबर"},
			Postpositions: []string{"मध्ये", "येथे", "पासून"},
		},
		"ne": {
			Titles:        []string{"श्री", "श्रीमती", "डा"},
			Surnames:      []string{"श्रेष्ठ", "थापा", "गुरुङ", "अधिकारी", "शर्मा", "पौडेल"},
			Organizations: []string{"विश्वविद्यालय", "कलेज", "संस्थान", "कम्पनी"},
			Cities:        []string{"काठमाडौं", "पोखरा", "ललितपुर", "विराटनगर"},
			Education:     []string{"स्नातक", "स्नातकोत्तर"},
			DateWords:     []string{"आज", "हिजो", "भोलि", "वर्ष"},
			Months:        []string{"वैशाख", "जेठ", "असार", "साउन", "भदौ", "असोज", "कात्तिक", "मंसिर", "पुष", "माघ", "फागुन", "चैत"},
			Postpositions: []string{"मा", "बाट"},
		},
		"ta": {
			Titles:        []string{"திரு", "திருமதி", "செல்வி", "டாக்டர்"},
			Surnames:      []string{"ஐயர்", "பிள்ளை", "முதலியார்", "நாயுடு"},
			Organizations: []string{"பல்கலைக்கழகம்", "கல்லூரி", "நிறுவனம்", "பள்ளி"},
			Cities:        []string{"சென்னை", "மதுரை", "கோயம்புத்தூர்", "திருச்சி", "சேலம்"},
			States:        []string{"தமிழ்நாடு", "கேரளா"},
			Education:     []string{"பட்டம்", "இளங்கலை", "முதுகலை"},
			DateWords:     []string{"இன்று", "நேற்று", "நாளை", "ஆண்டு"},
			Months:        []string{"ஜனவரி", "பிப்ரவரி", "மார்ச்", "ஏப்ரல்", "மே", "ஜூன்", "ஜூலை", "ஆகஸ்ட்", "செப்டம்பர்", "அக்டோபர்", "நவம்பர்", "டிசம்பர்"},
			Postpositions: []string{"இல்", "ல்", "இருந்து"},
		},
		"te": {
			Titles:        []string{"శ్రీ", "శ్రీమతి", "డాక్టర్"},
			Surnames:      []string{"రెడ్డి", "నాయుడు", "రావు", "శర్మ"},
			Organizations: []string{"విశ్వవిద్యాలయం", "కళాశాల", "సంస్థ", "పాఠశాల"},
			Cities:        []string{"హైదరాబాద్", "విశాఖపట్నం", "విజయవాడ", "వరంగల్", "తిరుపతి"},
			States:        []string{"తెలంగాణ", "ఆంధ్రప్రదేశ్"},
			Education:     []string{"డిగ్రీ", "పట్టభద్రుడు"},
			DateWords:     []string{"ఈరోజు", "నిన్న", "రేపు", "సంవత్సరం"},
			Months:        []string{"జనవరి", "ఫిబ్రవరి", "మార్చి", "ఏప్రిల్", "మే", "జూన్", "జూలై", "ఆగస్టు", "సెప్టెంబర్", "అక్టోబర్", "నవంబర్", "డిసెంబర్"},
			Postpositions: []string{"లో", "నుండి"},
		},
		"kn": {
			Titles:        []string{"ಶ್ರೀ", "ಶ್ರೀಮತಿ", "ಡಾ"},
			Surnames:      []string{"ಗೌಡ", "ರಾವ್", "ಶೆಟ್ಟಿ", "ಹೆಗ್ಡೆ"},
			Organizations: []string{"ವಿಶ್ವವಿದ್ಯಾಲಯ", "ಕಾಲೇಜು", "ಸಂಸ್ಥೆ", "ಶಾಲೆ"},
			Cities:        []string{"ಬೆಂಗಳೂರು", "ಮೈಸೂರು", "ಮಂಗಳೂರು", "ಹುಬ್ಬಳ್ಳಿ"},
			States:        []string{"ಕರ್ನಾಟಕ"},
			Education:     []string{"ಪದವಿ", "ಸ್ನಾತಕೋತ್ತರ"},
			DateWords:     []string{"ಇಂದು", "ನಿನ್ನೆ", "ನಾಳೆ", "ವರ್ಷ"},
			Months:        []string{"ಜನವರಿ", "ಫೆಬ್ರವರಿ", "ಮಾರ್ಚ್", "ಏಪ್ರಿಲ್", "ಮೇ", "ಜೂನ್", "ಜುಲೈ", "ಆಗಸ್ಟ್", "ಸೆಪ್ಟೆಂಬರ್", "ಅಕ್ಟೋಬರ್", "ನವೆಂಬರ್", "ಡಿಸೆಂಬರ್"},
			Postpositions: []string{"ನಲ್ಲಿ", "ಇಂದ"},
		},
		"ml": {
			Titles:        []string{"ശ്രീ", "ശ്രീമതി", "ഡോ"},
			Surnames:      []string{"നായർ", "മേനോൻ", "പിള്ള", "കുറുപ്പ്"},
			Organizations: []string{"സർവകലാശാല", "കോളേജ്", "സ്ഥാപനം", "സ്കൂൾ"},
			Cities:        []string{"കൊച്ചി", "തിരുവനന്തപുരം", "കോഴിക്കോട്", "തൃശ്ശൂർ"},
			States:        []string{"കേരളം"},
			Education:     []string{"ബിരുദം", "ബിരുദാനന്തരബിരുദം"},
			DateWords:     []string{"ഇന്ന്", "ഇന്നലെ", "നാളെ", "വർഷം"},
			Months:        []string{"ജനുവരി", "ഫെബ്രുവരി", "മാർച്ച്", "ഏപ്രിൽ", "മേയ്", "ജൂൺ", "ജൂലൈ", "ഓഗസ്റ്റ്", "സെപ്റ്റംബർ", "ഒക്ടോബർ", "നവംബർ", "ഡിസംബർ"},
			Postpositions: []string{"ൽ", "ഇൽ", "നിന്ന്"},
		},
		"bn": {
			Titles:        []string{"শ্রী", "শ্রীমতী", "ডঃ"},
			Surnames:      []string{"বন্দ্যোপাধ্যায়", "চট্টোপাধ্যায়", "মুখোপাধ্যায়", "দাস", "সেন", "বসু", "রায়"},
			Organizations: []string{"বিশ্ববিদ্যালয়", "কলেজ", "প্রতিষ্ঠান", "বিদ্যালয়", "কোম্পানি"},
			Cities:        []string{"কলকাতা", "ঢাকা", "শিলিগুড়ি", "চট্টগ্রাম"},
			States:        []string{"পশ্চিমবঙ্গ"},
			Education:     []string{"স্নাতক", "স্নাতকোত্তর", "ডিগ্রি"},
			DateWords:     []string{"আজ", "গতকাল", "আগামীকাল", "বছর"},
			Months:        []string{"জানুয়ারি", "ফেব্রুয়ারি", "মার্চ", "এপ্রিল", "মে", "জুন", "জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর"},
			Postpositions: []string{"এ", "থেকে", "তে"},
		},
		"as": {
			Titles:        []string{"শ্ৰী", "শ্ৰীমতী"},
			Surnames:      []string{"বৰুৱা", "গগৈ", "শৰ্মা", "দাস"},
			Organizations: []string{"বিশ্ববিদ্যালয়", "মহাবিদ্যালয়", "প্ৰতিষ্ঠান"},
			Cities:        []string{"গুৱাহাটী", "ডিব্ৰুগড়", "যোৰহাট"},
			States:        []string{"অসম"},
			Education:     []string{"স্নাতক", "স্নাতকোত্তৰ"},
			DateWords:     []string{"আজি", "কালি", "বছৰ"},
			Postpositions: []string{"ত", "পৰা"},
		},
		"gu": {
			Titles:        []string{"શ્રી", "શ્રીમતી", "ડૉ"},
			Surnames:      []string{"પટેલ", "શાહ", "મહેતા", "દેસાઈ"},
			Organizations: []string{"યુનિવર્સિટી", "કોલેજ", "સંસ્થા", "કંપની"},
			Cities:        []string{"અમદાવાદ", "સુરત", "વડોદરા", "રાજકોટ"},
			States:        []string{"ગુજરાત"},
			Education:     []string{"સ્નાતક", "અનુસ્નાતક", "ડિગ્રી"},
			DateWords:     []string{"આજે", "ગઈકાલે", "આવતીકાલે", "વર્ષ"},
			Months:        []string{"જાન્યુઆરી", "ફેબ્રુઆરી", "માર્ચ", "એપ્રિલ", "મે", "જૂન", "જુલાઈ", "ઓગસ્ટ", "સપ્ટેમ્બર", "ઓક્ટોબર", "નવેમ્બર", "ડિસેમ્બર"},
			Postpositions: []string{"માં", "થી"},
		},
		"pa": {
			Titles:        []string{"ਸ੍ਰੀ", "ਸ੍ਰੀਮਤੀ", "ਡਾ"},
			Surnames:      []string{"ਸਿੰਘ", "ਕੌਰ", "ਗਿੱਲ", "ਸੰਧੂ"},
			Organizations: []string{"ਯੂਨੀਵਰਸਿਟੀ", "ਕਾਲਜ", "ਸੰਸਥਾ", "ਕੰਪਨੀ"},
			Cities:        []string{"ਅੰਮ੍ਰਿਤਸਰ", "ਲੁਧਿਆਣਾ", "ਜਲੰਧਰ", "ਚੰਡੀਗੜ੍ਹ"},
			States:        []string{"ਪੰਜਾਬ"},
			Education:     []string{"ਗ੍ਰੈਜੂਏਸ਼ਨ", "ਡਿਗਰੀ"},
			DateWords:     []string{"ਅੱਜ", "ਕੱਲ੍ਹ", "ਸਾਲ"},
			Months:        []string{"ਜਨਵਰੀ", "ਫ਼ਰਵਰੀ", "ਮਾਰਚ", "ਅਪ੍ਰੈਲ", "ਮਈ", "ਜੂਨ", "ਜੁਲਾਈ", "ਅਗਸਤ", "ਸਤੰਬਰ", "ਅਕਤੂਬਰ", "ਨਵੰਬਰ", "ਦਸੰਬਰ"},
			Postpositions: []string{"ਵਿੱਚ", "ਤੋਂ"},
		},
		"ur": {
			Titles:        []string{"جناب", "محترمہ", "ڈاکٹر"},
			Surnames:      []string{"خان", "احمد", "قریشی", "صدیقی", "ملک"},
			Organizations: []string{"یونیورسٹی", "کالج", "ادارہ", "کمپنی"},
			Cities:        []string{"لاہور", "کراچی", "اسلام آباد", "حیدرآباد", "لکھنؤ"},
			States:        []string{"پنجاب", "سندھ"},
			Education:     []string{"گریجویشن", "ڈگری", "ماسٹرز"},
			DateWords:     []string{"آج", "کل", "سال"},
			Months:        []string{"جنوری", "فروری", "مارچ", "اپریل", "مئی", "جون", "جولائی", "اگست", "ستمبر", "اکتوبر", "نومبر", "دسمبر"},
			Postpositions: []string{"میں", "سے"},
		},
	}

	out := make(map[string]Source, len(specific))
	for lang, src := range specific {
		out[lang] = common.merge(src)
	}
	return out
}
