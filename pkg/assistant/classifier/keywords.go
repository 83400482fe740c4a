package classifier

var greetings = []string{
	"hi",
	"hello",
	"hey",
	"namaste",
	"welcome",
	"good morning",
	"good afternoon",
	"good evening",
	"howdy",
}

var gratitudeWords = []string{
	"thank you",
	"thanks",
	"thank u",
	"thanku",
	"appreciate",
	"grateful",
	"dhanyawad",
	"dhanyabad",
}

var farewells = []string{
	"bye",
	"goodbye",
	"see you",
	"take care",
	"farewell",
	"good night",
	"goodnight",
	"alvida",
}

var casualPhrases = []string{
	"how are you",
	"what's up",
	"whats up",
	"how do you do",
	"nice to meet you",
	"pleased to meet you",
	"what can you do",
	"tell me about yourself",
	"who are you",
	"what are you",
}

var healthKeywords = []string{
	"pain",
	"ache",
	"hurt",
	"sick",
	"ill",
	"disease",
	"fever",
	"cold",
	"cough",
	"headache",
	"stomach",
	"digestion",
	"diabetes",
	"pressure",
	"stress",
	"anxiety",
	"insomnia",
	"sleep",
	"tired",
	"fatigue",
	"weak",
	"treatment",
	"remedy",
	"cure",
	"medicine",
	"herb",
	"ayurveda",
	"dosha",
	"vata",
	"pitta",
	"kapha",
	"constipation",
	"diarrhea",
	"acidity",
	"migraine",
	"joint",
	"arthritis",
	"asthma",
	"allergy",
	"skin",
	"weight",
	"obesity",
	"cholesterol",
	"thyroid",
	"pcod",
	"periods",
	"pregnancy",
	"hair",
	"dandruff",
	"acne",
	"pimples",
	"rash",
}
