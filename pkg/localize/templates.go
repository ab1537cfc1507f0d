package localize

// Answer templates keyed the same way across languages. Placeholders in
// curly braces are substituted by the advisor before display.

var english = map[string]string{
	"ai.savings.excellent":         "Great job! You saved {savings} this month, a savings rate of {rate}%. Keep it up!",
	"ai.savings.good":              "You saved {savings} this month, a savings rate of {rate}%. A little more and you'll hit the recommended 20%.",
	"ai.savings.needs_improvement": "You saved {savings} this month, a savings rate of {rate}%. Try cutting discretionary spending to save more.",

	"ai.top_expense": "Your biggest expense this month is {category} at {amount}.",
	"ai.no_expenses": "You haven't recorded any expenses this month yet.",

	"ai.overspend.category":      "You've spent {current} on {category} this month, {overspend} over the typical limit of {limit}.",
	"ai.overspend.within_budget": "Your {category} spending is within the typical limit this month. Well done!",

	"ai.investment.recommendation": "Consider putting {amount} into {type} ({risk} risk). {description} Expected return: {return}.",

	"ai.savings_projection.projection": "Cutting {category} spending by {percent}% would save you {increase} a month, taking your savings from {current} to {projected}.",

	"ai.income.analysis":  "Your income this month is {income}.",
	"ai.expense.analysis": "Your expenses this month total {expenses}.",

	"ai.advice.0": "Follow the 50/30/20 rule: 50% needs, 30% wants, 20% savings.",
	"ai.advice.1": "Build an emergency fund covering 3-6 months of expenses before investing.",
	"ai.advice.2": "Review your subscriptions every few months and cancel what you don't use.",
	"ai.advice.3": "Automate your savings so the money moves before you can spend it.",
	"ai.advice.4": "Track every expense for a month to find where your money actually goes.",
	"ai.advice.5": "Pay off high-interest debt before putting money into investments.",
	"ai.advice.6": "Cook at home more often. Eating out is one of the easiest expenses to cut.",
	"ai.advice.7": "Start investing early, even small amounts. Compounding does the rest.",

	"ai.unknown_query": "I'm not sure I understood that. Try asking about your savings, top expenses, or investments.",
	"ai.error":         "Something went wrong while looking at your finances. Please try again.",

	"ai.quick_actions.savings":        "How can I save more money?",
	"ai.quick_actions.top_expense":    "What is my top expense?",
	"ai.quick_actions.overspend_food": "Am I overspending on food?",
	"ai.quick_actions.investment":     "Where should I invest ₹50,000?",
	"ai.quick_actions.cut_dining":     "What if I cut food spending by 15%?",
}

var hindi = map[string]string{
	"ai.savings.excellent":         "बहुत बढ़िया! इस महीने आपने {savings} बचाए, बचत दर {rate}% रही। ऐसे ही जारी रखें!",
	"ai.savings.good":              "इस महीने आपने {savings} बचाए, बचत दर {rate}% रही। थोड़ा और प्रयास करें और 20% तक पहुँचें।",
	"ai.savings.needs_improvement": "इस महीने आपने {savings} बचाए, बचत दर {rate}% रही। गैर-ज़रूरी खर्च घटाकर और बचत करें।",

	"ai.top_expense": "इस महीने आपका सबसे बड़ा खर्च {category} है, कुल {amount}।",
	"ai.no_expenses": "इस महीने आपने अभी तक कोई खर्च दर्ज नहीं किया है।",

	"ai.overspend.category":      "इस महीने आपने {category} पर {current} खर्च किए, जो {limit} की सामान्य सीमा से {overspend} अधिक है।",
	"ai.overspend.within_budget": "आपका {category} खर्च इस महीने सामान्य सीमा के भीतर है। शाबाश!",

	"ai.investment.recommendation": "{amount} को {type} ({risk} जोखिम) में लगाने पर विचार करें। {description} अपेक्षित रिटर्न: {return}।",

	"ai.savings_projection.projection": "{category} खर्च में {percent}% की कटौती से हर महीने {increase} बचेंगे, और आपकी बचत {current} से बढ़कर {projected} हो जाएगी।",

	"ai.income.analysis":  "इस महीने आपकी आय {income} है।",
	"ai.expense.analysis": "इस महीने आपके कुल खर्च {expenses} हैं।",

	"ai.advice.0": "50/30/20 नियम अपनाएँ: 50% ज़रूरतें, 30% इच्छाएँ, 20% बचत।",
	"ai.advice.1": "निवेश से पहले 3-6 महीने के खर्च जितना आपातकालीन फंड बनाएँ।",
	"ai.advice.2": "हर कुछ महीनों में अपनी सब्सक्रिप्शन जाँचें और अनुपयोगी रद्द करें।",
	"ai.advice.3": "बचत को स्वचालित करें ताकि पैसा खर्च होने से पहले ही अलग हो जाए।",
	"ai.advice.4": "एक महीने तक हर खर्च दर्ज करें और देखें कि पैसा कहाँ जाता है।",
	"ai.advice.5": "निवेश से पहले अधिक ब्याज वाले कर्ज चुकाएँ।",
	"ai.advice.6": "घर पर अधिक खाना बनाएँ। बाहर खाना सबसे आसानी से घटाया जा सकने वाला खर्च है।",
	"ai.advice.7": "जल्दी निवेश शुरू करें, भले ही राशि छोटी हो। बाकी काम चक्रवृद्धि करेगी।",

	"ai.unknown_query": "मैं यह समझ नहीं पाया। अपनी बचत, सबसे बड़े खर्च या निवेश के बारे में पूछकर देखें।",
	"ai.error":         "आपके वित्त की जाँच करते समय कुछ गड़बड़ हो गई। कृपया फिर से प्रयास करें।",

	"ai.quick_actions.savings":        "मैं और पैसे कैसे बचा सकता हूँ?",
	"ai.quick_actions.top_expense":    "मेरा सबसे बड़ा खर्च क्या है?",
	"ai.quick_actions.overspend_food": "क्या मैं खाने पर ज्यादा खर्च कर रहा हूँ?",
	"ai.quick_actions.investment":     "₹50,000 कहाँ निवेश करूँ?",
	"ai.quick_actions.cut_dining":     "अगर मैं खाने का खर्च 15% घटा दूँ तो?",
}

var marathi = map[string]string{
	"ai.savings.excellent":         "छान! या महिन्यात तुम्ही {savings} वाचवले, बचत दर {rate}% आहे. असेच चालू ठेवा!",
	"ai.savings.good":              "या महिन्यात तुम्ही {savings} वाचवले, बचत दर {rate}% आहे. थोडे अधिक प्रयत्न करा आणि 20% गाठा.",
	"ai.savings.needs_improvement": "या महिन्यात तुम्ही {savings} वाचवले, बचत दर {rate}% आहे. अनावश्यक खर्च कमी करून अधिक बचत करा.",

	"ai.top_expense": "या महिन्यातील तुमचा सर्वात मोठा खर्च {category} आहे, एकूण {amount}.",
	"ai.no_expenses": "या महिन्यात तुम्ही अजून कोणताही खर्च नोंदवलेला नाही.",

	"ai.overspend.category":      "या महिन्यात तुम्ही {category} वर {current} खर्च केले, जे {limit} या सामान्य मर्यादेपेक्षा {overspend} जास्त आहे.",
	"ai.overspend.within_budget": "तुमचा {category} खर्च या महिन्यात सामान्य मर्यादेत आहे. उत्तम!",

	"ai.investment.recommendation": "{amount} {type} ({risk} जोखीम) मध्ये गुंतवण्याचा विचार करा. {description} अपेक्षित परतावा: {return}.",

	"ai.savings_projection.projection": "{category} खर्च {percent}% ने कमी केल्यास दरमहा {increase} वाचतील, आणि तुमची बचत {current} वरून {projected} होईल.",

	"ai.income.analysis":  "या महिन्यातील तुमचे उत्पन्न {income} आहे.",
	"ai.expense.analysis": "या महिन्यातील तुमचा एकूण खर्च {expenses} आहे.",

	"ai.advice.0": "50/30/20 नियम पाळा: 50% गरजा, 30% इच्छा, 20% बचत.",
	"ai.advice.1": "गुंतवणुकीपूर्वी 3-6 महिन्यांच्या खर्चाइतका आपत्कालीन निधी उभारा.",
	"ai.advice.2": "दर काही महिन्यांनी सबस्क्रिप्शन तपासा आणि न वापरलेली रद्द करा.",
	"ai.advice.3": "बचत स्वयंचलित करा म्हणजे पैसे खर्च होण्याआधीच बाजूला जातील.",
	"ai.advice.4": "महिनाभर प्रत्येक खर्च नोंदवा आणि पैसे नेमके कुठे जातात ते पाहा.",
	"ai.advice.5": "गुंतवणुकीपूर्वी जास्त व्याजाची कर्जे फेडा.",
	"ai.advice.6": "घरी अधिक वेळा स्वयंपाक करा. बाहेर खाणे हा सर्वात सहज कमी करता येणारा खर्च आहे.",
	"ai.advice.7": "लवकर गुंतवणूक सुरू करा, रक्कम लहान असली तरी. उरलेले काम चक्रवाढ करते.",

	"ai.unknown_query": "मला ते नीट समजले नाही. तुमची बचत, सर्वात मोठा खर्च किंवा गुंतवणुकीबद्दल विचारून पाहा.",
	"ai.error":         "तुमच्या आर्थिक माहितीची तपासणी करताना काहीतरी चूक झाली. कृपया पुन्हा प्रयत्न करा.",

	"ai.quick_actions.savings":        "मी आणखी पैसे कसे वाचवू?",
	"ai.quick_actions.top_expense":    "माझा सर्वात मोठा खर्च कोणता?",
	"ai.quick_actions.overspend_food": "मी खाण्यावर जास्त खर्च करत आहे का?",
	"ai.quick_actions.investment":     "₹50,000 कुठे गुंतवू?",
	"ai.quick_actions.cut_dining":     "मी खाण्याचा खर्च 15% कमी केला तर?",
}
