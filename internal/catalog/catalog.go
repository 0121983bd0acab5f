// Package catalog holds the static bilingual prompt texts shown to citizens.
// Every key is duplicated per supported language; unknown languages fall back
// to English.
package catalog

// Key identifies one user-facing prompt.
type Key string

const (
	KeyGreeting Key = "greeting"

	KeyBirthChildName     Key = "birth_child_name"
	KeyBirthDOB           Key = "birth_dob"
	KeyBirthSex           Key = "birth_sex"
	KeyBirthFatherName    Key = "birth_father_name"
	KeyBirthMotherName    Key = "birth_mother_name"
	KeyBirthDocuments     Key = "birth_documents"
	KeyBirthPaymentAmount Key = "birth_payment_amount"
	KeyBirthPrintOption   Key = "birth_print_option"

	KeyIDAge           Key = "id_age"
	KeyIDHasID         Key = "id_has_id"
	KeyIDSlotSelection Key = "id_slot_selection"
	KeyIDDocuments     Key = "id_documents"
	KeyIDPaymentAmount Key = "id_payment_amount"
)

const (
	// LanguageAmharic and LanguageEnglish are the supported locales.
	LanguageAmharic = "am"
	LanguageEnglish = "en"
)

var responses = map[string]map[Key]string{
	LanguageAmharic: {
		KeyGreeting: "ሰላም! የኩባሌ ሞያ ወደ ነኝ! \n\nምን ሞያ ይወዳደር?\nA) ልጅ መመዝገብ (Birth Certificate)\nB) ኢጂ ቀጠሪ (ID Appointment)\n\nA ወይስ B ይንገርን",

		KeyBirthChildName:     "ልጅ ስም ምንድን?",
		KeyBirthDOB:           "ልጅ የተወለደበት ቀን ምን ነው?\n(ምሳሌ: 15/03/2020)",
		KeyBirthSex:           "ወንድ ነው ወይስ ሴት?\nA) ወንድ (Boy)\nB) ሴት (Girl)",
		KeyBirthFatherName:    "አባቱ ስም ምንድን?",
		KeyBirthMotherName:    "እናቱ ስም ምንድን?",
		KeyBirthDocuments:     "ሰነዶች ይስቋ:\n1. ከቀበሌው የመኖሪያ ደብዳቤ\n2. ወላጅ ID (copy)\n3. ምስክር መግለጫ (2)",
		KeyBirthPaymentAmount: "✅ ሰነዶች ተቀበልናል!\n\n💰 ዋጋ: 100 ETB\n\nየከፈሉ?\nA) Telebirr - Dial *144#\nB) ፊት ለፊት",
		KeyBirthPrintOption:   "✅ ክፍያ ተረጋግጧል!\n\n📄 ምን ይወዳደር?\nA) Digital PDF ብቻ\nB) ከቀበሌ ቢሮ ይታተሙ\nC) ሁለቱም",

		KeyIDAge:           "ስንት ዓመት ነበሩ?",
		KeyIDHasID:         "ከዚህ ቀደም ID አለዎ?\nA) አዎ (Yes)\nB) የለም (No)",
		KeyIDSlotSelection: "ተዳቅሩ ጊዜ ምን ይወዳደር?\n\nA) ታህሳስ 27 - 9:00 ጠዋት\nB) ታህሳስ 27 - 10:00 ጠዋት\nC) ታህሳስ 28 - 9:00 ጠዋት\nD) ታህሳስ 28 - 10:00 ጠዋት",
		KeyIDDocuments:     "ሰነዶች ይስቋ:\n1. ከቀበሌው የመኖሪያ ደብዳቤ\n2. ልደት ሰርቲፊኬት\n3. ፎቶ (4x6)",
		KeyIDPaymentAmount: "✅ ተተኪ ተቀመጠ!\n\n💰 ዋጋ: 200 ETB\n\nየከፈሉ?\nA) Telebirr\nB) ፊት ለፊት",
	},

	LanguageEnglish: {
		KeyGreeting: "Hello! Welcome to Kebele Services.\n\nWhat do you need?\nA) Birth Certificate\nB) ID Appointment\n\nReply: A or B",

		KeyBirthChildName:     "What is the child's full name?",
		KeyBirthDOB:           "When was the child born?\n(Example: 15/03/2020)",
		KeyBirthSex:           "Is the child male or female?\nA) Boy\nB) Girl",
		KeyBirthFatherName:    "What is the father's name?",
		KeyBirthMotherName:    "What is the mother's name?",
		KeyBirthDocuments:     "Please upload these documents:\n1. Kebele Residence Letter\n2. Parent ID (copy)\n3. Witness Statements (2)",
		KeyBirthPaymentAmount: "✅ Documents received!\n\n💰 Cost: 100 ETB\n\nHow to pay?\nA) Telebirr - Dial *144#\nB) Later",
		KeyBirthPrintOption:   "✅ Payment verified!\n\n📄 What would you like?\nA) Digital PDF only\nB) Print at Kebele office\nC) Both",

		KeyIDAge:           "How old are you?",
		KeyIDHasID:         "Do you already have an ID?\nA) Yes\nB) No",
		KeyIDSlotSelection: "When would you like to visit?\n\nA) Dec 27 - 9:00 AM\nB) Dec 27 - 10:00 AM\nC) Dec 28 - 9:00 AM\nD) Dec 28 - 10:00 AM",
		KeyIDDocuments:     "Please upload these documents:\n1. Kebele Residence Letter\n2. Birth Certificate\n3. Passport Photo (4x6)",
		KeyIDPaymentAmount: "✅ Appointment booked!\n\n💰 Cost: 200 ETB\n\nHow to pay?\nA) Telebirr\nB) Later",
	},
}

// Lookup returns the prompt text for the language and key, falling back to
// English for unknown languages and to an empty string for unknown keys.
func Lookup(language string, key Key) string {
	table, ok := responses[language]
	if !ok {
		table = responses[LanguageEnglish]
	}
	return table[key]
}

// Supported reports whether the language has its own catalog.
func Supported(language string) bool {
	_, ok := responses[language]
	return ok
}
