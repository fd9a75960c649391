package i18n

// translations is the static UI string table, keyed by language then key.
var translations = map[string]map[string]string{
	"English": {
		"welcome_title":       "Welcome to Shiksha Mitra!",
		"welcome_subtitle":    "Your AI-powered learning companion",
		"lets_start":          "Let's get you started!",
		"whats_your_name":     "What's your name?",
		"preferred_language":  "Preferred Language",
		"which_class":         "Which class are you in?",
		"start_learning":      "Start Learning!",
		"welcome_aboard":      "Welcome aboard",
		"login":               "Login",
		"signup":              "Sign Up",
		"username":            "Username",
		"password":            "Password",
		"login_success":       "Login successful!",
		"invalid_credentials": "Invalid username or password",
		"signup_success":      "Account created successfully!",
		"dashboard":           "Dashboard",
		"test":                "Test",
		"doubt_ai":            "Doubt AI",
		"analytics":           "Analytics",
		"settings":            "Settings",
		"learning_streak":     "Learning Streak",
		"days":                "Days",
		"today_xp":            "Today's XP",
		"take_test":           "Take a Test",
		"ask_doubt":           "Ask a Doubt",
		"question":            "Question",
		"select_answer":       "Select your answer:",
		"submit_answer":       "Submit Answer",
		"correct":             "Correct! Great job!",
		"incorrect":           "Not quite. Try again!",
		"ai_thinking":         "AI Tutor is thinking...",
		"translating_to":      "Translating to",
		"loading":             "Loading...",
		"save":                "Save",
		"cancel":              "Cancel",
		"logout":              "Logout",
	},
	"Hindi": {
		"welcome_title":       "शिक्षा मित्र में आपका स्वागत है!",
		"welcome_subtitle":    "आपका AI-संचालित शिक्षण साथी",
		"lets_start":          "चलिए शुरू करते हैं!",
		"whats_your_name":     "आपका नाम क्या है?",
		"preferred_language":  "पसंदीदा भाषा",
		"which_class":         "आप किस कक्षा में हैं?",
		"start_learning":      "सीखना शुरू करें!",
		"login":               "लॉगिन",
		"signup":              "साइन अप",
		"username":            "उपयोगकर्ता नाम",
		"password":            "पासवर्ड",
		"login_success":       "लॉगिन सफल!",
		"invalid_credentials": "गलत उपयोगकर्ता नाम या पासवर्ड",
		"dashboard":           "डैशबोर्ड",
		"test":                "परीक्षा",
		"doubt_ai":            "संदेह AI",
		"learning_streak":     "सीखने की श्रृंखला",
		"days":                "दिन",
		"today_xp":            "आज का XP",
		"take_test":           "परीक्षा दें",
		"ask_doubt":           "संदेह पूछें",
		"question":            "प्रश्न",
		"loading":             "लोड हो रहा है...",
		"save":                "सहेजें",
		"cancel":              "रद्द करें",
		"logout":              "लॉगआउट",
	},
	"Kannada": {
		"welcome_title":      "ಶಿಕ್ಷಾ ಮಿತ್ರಕ್ಕೆ ಸುಸ್ವಾಗತ!",
		"preferred_language": "ಆದ್ಯತೆಯ ಭಾಷೆ",
		"login":              "ಲಾಗಿನ್",
		"signup":             "ಸೈನ್ ಅಪ್",
		"test":               "ಪರೀಕ್ಷೆ",
		"learning_streak":    "ಕಲಿಕೆಯ ಸರಣಿ",
		"days":               "ದಿನಗಳು",
		"take_test":          "ಪರೀಕ್ಷೆ ತೆಗೆದುಕೊಳ್ಳಿ",
		"ask_doubt":          "ಸಂದೇಹ ಕೇಳಿ",
		"question":           "ಪ್ರಶ್ನೆ",
		"logout":             "ಲಾಗ್ ಔಟ್",
	},
}
