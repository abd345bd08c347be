package i18n

// The English copy carries the official wording; the Dutch copy is the
// accessible translation and the archival language.

var supportedOrder = []string{"en", "nl"}

var catalogs = map[string]Catalog{
	"en": {
		Title: "Independent Contractor Checklist",
		Description: "Complete this short checklist to document that the engagement does not " +
			"constitute false self-employment. Keep the language simple and answer each " +
			"question honestly.",
		ContractorDetails: "Contractor details",
		ClientDetails:     "Client details",
		ProjectDetails:    "Assignment details",
		ContractorName:    "Contractor name",
		ContractorCompany: "Business name (if applicable)",
		ClientName:        "Client/agency name",
		ProjectName:       "Assignment or project",
		LanguageLabel:     "Language",
		ChooseLanguage:    "Choose language",
		QuestionsIntro:    "Answer each question with Yes or No.",
		Questions: []Question{
			{ID: "multiple_clients", Text: "Does the contractor work for multiple clients during the year?"},
			{ID: "controls_schedule", Text: "Does the contractor decide their own working hours?"},
			{ID: "provides_tools", Text: "Does the contractor use their own tools or equipment?"},
			{ID: "entrepreneurial_risk", Text: "Does the contractor carry financial or entrepreneurial risk?"},
			{ID: "can_substitute", Text: "Can the contractor send a qualified substitute to perform the work?"},
			{ID: "sets_rates", Text: "Does the contractor agree the rates and scope directly with the client?"},
		},
		AdditionalNotes: "Additional notes",
		Declaration:     "Declaration",
		DeclarationText: "I confirm that the answers above are correct to the best of my knowledge.",
		DateLabel:       "Date",
		Submit:          "Generate PDF",
		Yes:             "Yes",
		No:              "No",
		SuccessMessage:  "Checklist submitted. Your PDF download will begin shortly.",
		LanguageNotice:  "A copy of the original language submission and the Dutch translation will be saved.",
	},
	"nl": {
		Title: "Checklist zelfstandige zonder schijnzelfstandigheid",
		Description: "Vul deze korte checklist in om vast te leggen dat de opdracht geen " +
			"schijnzelfstandigheid oplevert. Gebruik eenvoudige taal en beantwoord de " +
			"vragen eerlijk.",
		ContractorDetails: "Gegevens opdrachtnemer",
		ClientDetails:     "Gegevens opdrachtgever/bemiddelaar",
		ProjectDetails:    "Opdracht",
		ContractorName:    "Naam opdrachtnemer",
		ContractorCompany: "Bedrijfsnaam (indien van toepassing)",
		ClientName:        "Naam opdrachtgever/bureau",
		ProjectName:       "Naam opdracht of project",
		LanguageLabel:     "Taal",
		ChooseLanguage:    "Kies taal",
		QuestionsIntro:    "Beantwoord elke vraag met Ja of Nee.",
		Questions: []Question{
			{ID: "multiple_clients", Text: "Werkt de zzp'er in het jaar voor meerdere opdrachtgevers?"},
			{ID: "controls_schedule", Text: "Bepaalt de zzp'er zelf de werktijden?"},
			{ID: "provides_tools", Text: "Gebruikt de zzp'er eigen gereedschap of middelen?"},
			{ID: "entrepreneurial_risk", Text: "Draagt de zzp'er ondernemers- of financieel risico?"},
			{ID: "can_substitute", Text: "Kan de zzp'er zich laten vervangen door een gekwalificeerde vervanger?"},
			{ID: "sets_rates", Text: "Maakt de zzp'er zelf prijsafspraken over tarief en scope?"},
		},
		AdditionalNotes: "Opmerkingen",
		Declaration:     "Verklaring",
		DeclarationText: "Ik verklaar dat bovenstaande antwoorden naar waarheid zijn ingevuld.",
		DateLabel:       "Datum",
		Submit:          "PDF maken",
		Yes:             "Ja",
		No:              "Nee",
		SuccessMessage:  "Checklist verzonden. De PDF-download start direct.",
		LanguageNotice:  "Er wordt een kopie van de originele taal en de Nederlandse vertaling opgeslagen.",
	},
}
