package taxonomy

// Default returns the built-in symptom taxonomy
func Default() *Taxonomy {
	return &Taxonomy{
		high:   append([]string(nil), defaultHighRisk...),
		medium: append([]string(nil), defaultMediumRisk...),
	}
}

// Labels returns the dermatological taxonomy matched against image classifier labels
func Labels() *Taxonomy {
	return &Taxonomy{
		high:   append([]string(nil), labelHighRisk...),
		medium: append([]string(nil), labelMediumRisk...),
	}
}

var defaultHighRisk = []string{
	"fever", "high temperature", "cough", "shortness of breath", "difficulty breathing",
	"chest pain", "bleeding", "severe pain", "unconscious", "seizure", "convulsion",
	"cannot breathe", "choking", "severe headache", "stiff neck", "rash with fever",
	"vomiting blood", "blood in stool", "severe dehydration", "severe allergic reaction",
	"anaphylaxis", "heart attack", "stroke", "severe burn", "broken bone", "fracture",
	// dataset-derived
	"persistent fever", "high fever", "breathing difficulty", "rapid breathing",
	"chest tightness", "severe cough", "bloody cough", "severe fatigue",
	"severe weakness", "confusion", "loss of consciousness", "severe dizziness",
	"severe nausea", "severe vomiting", "severe diarrhea", "severe abdominal pain",
}

var defaultMediumRisk = []string{
	"headache", "fatigue", "persistent pain", "nausea", "vomiting", "diarrhea",
	"dizziness", "weakness", "sore throat", "runny nose", "congestion", "body aches",
	"muscle pain", "joint pain", "swelling", "redness", "itchy", "rash",
	"persistent cough", "mild fever", "chills", "loss of appetite", "sleep problems",
	// dataset-derived
	"mild cough", "sneezing", "watery eyes", "mild headache", "mild fatigue",
	"slight fever", "mild body aches", "mild sore throat", "mild congestion",
	"itchy skin", "dry cough", "mild nausea", "mild dizziness", "mild weakness",
}

var labelHighRisk = []string{
	"infection", "wound", "rash", "ulcer", "abscess", "lesion",
	"blister", "eruption", "dermatitis", "eczema", "boil",
}

var labelMediumRisk = []string{
	"bruise", "swelling", "inflammation", "sore", "cut", "scratch",
}
