package catalog

// questionBank is the built-in test bank. Question IDs are never reused or
// renumbered; new catalog versions may only append.
var questionBank = map[string]map[string][]Question{
	"Mathematics": {
		"Level 1": {
			{
				ID: "math_l1_q1",
				Text: map[string]string{
					"en": "What is 15 + 27?",
					"hi": "15 + 27 क्या है?",
					"kn": "15 + 27 ಎಷ್ಟು?",
					"te": "15 + 27 ఎంత?",
					"mr": "15 + 27 किती आहे?",
				},
				Options: []string{"42", "52", "32", "62"},
				Correct: 0,
				Marks:   5,
			},
			{
				ID: "math_l1_q2",
				Text: map[string]string{
					"en": "What is 8 × 7?",
					"hi": "8 × 7 क्या है?",
					"kn": "8 × 7 ಎಷ್ಟು?",
					"te": "8 × 7 ఎంత?",
					"mr": "8 × 7 किती आहे?",
				},
				Options: []string{"54", "56", "64", "48"},
				Correct: 1,
				Marks:   5,
			},
			{
				ID: "math_l1_q3",
				Text: map[string]string{
					"en": "What is the value of 100 - 37?",
					"hi": "100 - 37 का मान क्या है?",
					"kn": "100 - 37 ರ ಮೌಲ್ಯ ಎಷ್ಟು?",
					"te": "100 - 37 విలువ ఎంత?",
					"mr": "100 - 37 चे मूल्य काय आहे?",
				},
				Options: []string{"73", "63", "53", "67"},
				Correct: 1,
				Marks:   5,
			},
		},
		"Level 2": {
			{
				ID: "math_l2_q1",
				Text: map[string]string{
					"en": "Solve: 2x + 5 = 15. Find x.",
					"hi": "हल करें: 2x + 5 = 15। x का मान ज्ञात करें।",
					"kn": "ಪರಿಹರಿಸಿ: 2x + 5 = 15. x ಅನ್ನು ಕಂಡುಹಿಡಿಯಿರಿ.",
					"te": "పరిష్కరించండి: 2x + 5 = 15. x కనుగొనండి.",
					"mr": "सोडवा: 2x + 5 = 15. x शोधा.",
				},
				Options: []string{"5", "10", "7", "8"},
				Correct: 0,
				Marks:   10,
			},
			{
				ID: "math_l2_q2",
				Text: map[string]string{
					"en": "What is the area of a rectangle with length 12 cm and width 8 cm?",
					"hi": "12 सेमी लंबाई और 8 सेमी चौड़ाई वाले आयत का क्षेत्रफल क्या है?",
					"kn": "12 ಸೆಂ.ಮೀ ಉದ್ದ ಮತ್ತು 8 ಸೆಂ.ಮೀ ಅಗಲದ ಆಯತದ ವಿಸ್ತೀರ್ಣ ಎಷ್ಟು?",
					"te": "12 సెం.మీ పొడవు మరియు 8 సెం.మీ వెడల్పు ఉన్న దీర్ఘచతురస్రం వైశాల్యం ఎంత?",
					"mr": "12 सेमी लांबी आणि 8 सेमी रुंदी असलेल्या आयताचे क्षेत्रफळ काय आहे?",
				},
				Options: []string{"96 cm²", "20 cm²", "40 cm²", "106 cm²"},
				Correct: 0,
				Marks:   10,
			},
		},
		"Level 3": {
			{
				ID: "math_l3_q1",
				Text: map[string]string{
					"en": "If a² + b² = 13 and ab = 6, find (a + b)²",
					"hi": "यदि a² + b² = 13 और ab = 6 है, तो (a + b)² का मान ज्ञात करें",
					"kn": "a² + b² = 13 ಮತ್ತು ab = 6 ಆಗಿದ್ದರೆ, (a + b)² ಕಂಡುಹಿಡಿಯಿರಿ",
					"te": "a² + b² = 13 మరియు ab = 6 అయితే, (a + b)² కనుగొనండి",
					"mr": "जर a² + b² = 13 आणि ab = 6 असेल तर (a + b)² शोधा",
				},
				Options: []string{"25", "19", "21", "23"},
				Correct: 0,
				Marks:   15,
			},
		},
	},
	"Science": {
		"Level 1": {
			{
				ID: "sci_l1_q1",
				Text: map[string]string{
					"en": "What is the process by which plants make their food?",
					"hi": "पौधे अपना भोजन किस प्रक्रिया द्वारा बनाते हैं?",
					"kn": "ಸಸ್ಯಗಳು ತಮ್ಮ ಆಹಾರವನ್ನು ತಯಾರಿಸುವ ಪ್ರಕ್ರಿಯೆ ಯಾವುದು?",
					"te": "మొక్కలు తమ ఆహారాన్ని తయారు చేసే ప్రక్రియ ఏమిటి?",
					"mr": "वनस्पती त्यांचे अन्न कोणत्या प्रक्रियेद्वारे तयार करतात?",
				},
				Options: []string{"Photosynthesis", "Respiration", "Digestion", "Absorption"},
				Correct: 0,
				Marks:   5,
			},
			{
				ID: "sci_l1_q2",
				Text: map[string]string{
					"en": "Which organ pumps blood throughout the body?",
					"hi": "कौन सा अंग पूरे शरीर में रक्त पंप करता है?",
					"kn": "ಯಾವ ಅಂಗವು ದೇಹದಾದ್ಯಂತ ರಕ್ತವನ್ನು ಪಂಪ್ ಮಾಡುತ್ತದೆ?",
					"te": "శరీరం అంతటా రక్తాన్ని పంప్ చేసే అవయవం ఏది?",
					"mr": "कोणता अवयव संपूर्ण शरीरात रक्त पंप करतो?",
				},
				Options: []string{"Lungs", "Heart", "Liver", "Brain"},
				Correct: 1,
				Marks:   5,
			},
		},
		"Level 2": {
			{
				ID: "sci_l2_q1",
				Text: map[string]string{
					"en": "What is the chemical formula for water?",
					"hi": "पानी का रासायनिक सूत्र क्या है?",
					"kn": "ನೀರಿನ ರಾಸಾಯನಿಕ ಸೂತ್ರ ಏನು?",
					"te": "నీటి రసాయన సూత్రం ఏమిటి?",
					"mr": "पाण्याचे रासायनिक सूत्र काय आहे?",
				},
				Options: []string{"H₂O", "CO₂", "O₂", "NaCl"},
				Correct: 0,
				Marks:   10,
			},
		},
		"Level 3": {
			{
				ID: "sci_l3_q1",
				Text: map[string]string{
					"en": "What is the powerhouse of the cell?",
					"hi": "कोशिका का पावरहाउस क्या है?",
					"kn": "ಜೀವಕೋಶದ ಶಕ್ತಿಗೃಹ ಯಾವುದು?",
					"te": "కణం యొక్క శక్తి గృహం ఏమిటి?",
					"mr": "पेशीचे पॉवरहाऊस काय आहे?",
				},
				Options: []string{"Nucleus", "Mitochondria", "Ribosome", "Chloroplast"},
				Correct: 1,
				Marks:   15,
			},
		},
	},
	"English": {
		"Level 1": {
			{
				ID: "eng_l1_q1",
				Text: map[string]string{
					"en": "What is the plural of 'child'?",
					"hi": "'child' का बहुवचन क्या है?",
					"kn": "'child' ನ ಬಹುವಚನ ಏನು?",
					"te": "'child' యొక్క బహువచనం ఏమిటి?",
					"mr": "'child' चे अनेकवचन काय आहे?",
				},
				Options: []string{"Childs", "Children", "Childrens", "Child"},
				Correct: 1,
				Marks:   5,
			},
		},
		"Level 2": {
			{
				ID: "eng_l2_q1",
				Text: map[string]string{
					"en": "Identify the verb in: 'She runs quickly'",
					"hi": "क्रिया पहचानें: 'She runs quickly'",
					"kn": "ಕ್ರಿಯಾಪದ ಗುರುತಿಸಿ: 'She runs quickly'",
					"te": "క్రియను గుర్తించండి: 'She runs quickly'",
					"mr": "क्रियापद ओळखा: 'She runs quickly'",
				},
				Options: []string{"She", "runs", "quickly", "None"},
				Correct: 1,
				Marks:   10,
			},
		},
		"Level 3": {
			{
				ID: "eng_l3_q1",
				Text: map[string]string{
					"en": "What type of sentence is: 'What a beautiful day!'",
					"hi": "यह किस प्रकार का वाक्य है: 'What a beautiful day!'",
					"kn": "ಈ ಯಾವ ರೀತಿಯ ವಾಕ್ಯ: 'What a beautiful day!'",
					"te": "ఇది ఏ రకమైన వాక్యం: 'What a beautiful day!'",
					"mr": "हे कोणत्या प्रकारचे वाक्य आहे: 'What a beautiful day!'",
				},
				Options: []string{"Interrogative", "Imperative", "Exclamatory", "Declarative"},
				Correct: 2,
				Marks:   15,
			},
		},
	},
}
