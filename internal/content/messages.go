package content

// Key identifies a static UI message.
type Key string

const (
	KeyWelcome         Key = "welcome"
	KeyChooseLanguage  Key = "choose_language"
	KeyLanguageSet     Key = "language_set"
	KeyHelp            Key = "help"
	KeyDisclaimer      Key = "disclaimer"
	KeyShortDisclaimer Key = "short_disclaimer"
	KeyAlertPrefix     Key = "urgent_alert_prefix"
	KeyAlertSuffix     Key = "urgent_alert_suffix"
	KeyFallbackError   Key = "fallback_error"
)

// messages holds the static UI strings per language.  The Quechua and
// Shipibo-Konibo translations should be reviewed by native speakers before
// production use.
var messages = map[Language]map[Key]string{
	ES: {
		KeyWelcome: "👋 Hola, soy *Piribot*.\n" +
			"Estoy aquí para acompañarte durante tu embarazo con información general y apoyo emocional.",
		KeyChooseLanguage: "Por favor, elige el idioma en el que prefieres conversar:",
		KeyLanguageSet:    "Perfecto, conversaremos en Español 🇵🇪.",
		KeyHelp: "Puedes escribirme tus dudas o cómo te sientes durante el embarazo y te responderé " +
			"con información sencilla y acompañamiento emocional.\n\n" +
			"Ejemplos de preguntas:\n" +
			"- ¿Es normal sentir náuseas en el primer trimestre?\n" +
			"- ¿Qué puedo hacer para dormir mejor?\n" +
			"- Me siento preocupada, ¿puedo contarte cómo me siento?",
		KeyDisclaimer: "⚠️ *Importante*\n" +
			"Piribot no reemplaza a una profesional ni a un profesional de salud. " +
			"Solo brinda información general y acompañamiento emocional. " +
			"Si tienes una urgencia, dolor muy fuerte, sangrado, fiebre o te sientes muy mal, " +
			"acude de inmediato al centro de salud u hospital más cercano.",
		KeyShortDisclaimer: "Piribot no reemplaza a una profesional ni a un profesional de salud; " +
			"solo brinda información general y acompañamiento emocional.",
		KeyAlertPrefix: "Lo que cuentas podría ser una *señal de alarma* durante el embarazo.",
		KeyAlertSuffix: "Te recomiendo que acudas *lo antes posible* a un centro de salud u hospital " +
			"y, si es necesario, llames a los servicios de emergencia de tu zona.\n\n" +
			"Mientras tanto, trata de no quedarte sola y busca apoyo de alguna persona de confianza.",
		KeyFallbackError: "Lo siento, en este momento no puedo responder con normalidad.\n" +
			"Por favor, intenta nuevamente más tarde. " +
			"Si tienes una urgencia, acude al centro de salud u hospital más cercano.",
	},
	QU: {
		KeyWelcome: "👋 Ñuqaqa *Piribot* kani.\n" +
			"Wawawan wañusqa kachkan hampiyta qhawayta munaykichu, " +
			"ñuqaqa willayta generalmanta ruwani, mana hamuq doctor nisqaqa kanichu.",
		KeyChooseLanguage: "Ama hina, ima simipi rimakuyta munankichu, akllay:",
		KeyLanguageSet:    "Allinmi, Quechua simipi rimarisunchis 🇵🇪.",
		KeyHelp: "Embrazomanta tapukuyta atinki, ima hina kasqaykita willakuyta atinki, " +
			"ñuqaqa kichkakunata y willakuyta aswan simple simipi niyki.\n\n" +
			"Tapuykunapaq ñawpaq:\n" +
			"- Qallariyniykapi ashnayki normalchu?\n" +
			"- Ima ruwaspa allin puñunayta atini?\n" +
			"- Manam allinwan kachkani, ¿qa riqsichiyta atinki?",
		KeyDisclaimer: "⚠️ *Sumaq yuyay*\n" +
			"Piribot mana doctor ni enfermera hina kanchu. " +
			"General willakuyta sapallan churin, manam diagnósticota churichu. " +
			"Sut'iykita, sinchilla nanayta, yawarnillayta, q'omer nanayta utaq " +
			"aswan mana allin kasqaykita tiyanqa, " +
			"chayqa utaqmi aswan utqaylla hampikamayuq wasiman risqayki.",
		KeyShortDisclaimer: "Piribot mana doctor ni enfermera hina kanchu; " +
			"willakuy general sapallan churin.",
		KeyAlertPrefix: "Rimakuykita uyarispa, embrazopi *peligro* kayta rikuchikuchkan hina.",
		KeyAlertSuffix: "Ama qhipaman churaychu, utqaylla hampikamayuq wasiman rinayki kallpachakuy.\n\n" +
			"Sichus atinki, familia masiykita utaq muyuq runata maqllay, " +
			"sapa sapallan kachkuyta ama saqiychu.",
		KeyFallbackError: "Pampachaway, kunan pacha manam allin kutichiyta atini.\n" +
			"Aswanta qhipaman wakmanta q'epiyta yachay. " +
			"Sichus aswan sinchi nanay utaq peligro tiyan, utqaylla hampikamayuq wasiman rinayki.",
	},
	SHP: {
		KeyWelcome: "👋 Nete bake, *Piribot* jashiñ.\n" +
			"Jakon jaskaraon betea iki shinanti bake yoson jakon maiti, " +
			"jaskaraon oraonbo shinanti jaskaraon iikin.",
		KeyChooseLanguage: "Jenki, jaskaraon iki non iki jain shinanbo, akën:",
		KeyLanguageSet:    "Jakon, Shipibo-Konibo jaisra ikinbo jaskaraon iki 🇵🇪.",
		KeyHelp: "Embarazo shinanbo jaskaraon iki, shinanti maiti ikin, " +
			"jaskaraon ninkibo non jaskaraon jato jaskatima.\n\n" +
			"Jaskaraon tapuesba ainban:\n" +
			"- ¿Rari jaskaraon bake embarazobo jawen maiti normal jatonma?\n" +
			"- ¿Ja ainban jaton bake wesna bërëman jaskatima?\n" +
			"- Jaskaraon pena iki, ¿ja ainbobo ninkibo iki?",
		KeyDisclaimer: "⚠️ *Jakon jaskaraon*\n" +
			"Piribot mana meraya ni doctor jai, ira jaskaraon willaibo jakon oraonbo ani.\n" +
			"Non jakon shinanti, jatibi jaskaraon wesna, yawar íbo, " +
			"jaskaraon jato wesnati shinanti, jawen nete centro de salud rabi o hospital rabi jakanai.",
		KeyShortDisclaimer: "Piribot mana doctor ni meraya jai; jakon información ja ikinbo " +
			"jai onanya jaskaraon.",
		KeyAlertPrefix: "Jaskaraon ninkibo iki bake embarazobo *peligro* shinanti jakon.",
		KeyAlertSuffix: "Jawen ja, nete centro de salud rabi o hospital rabi jawe *jaskaraon* jakanai.\n\n" +
			"Jaskaraon bake saiyanai ikinma, ja atibobo non familia o amigo shinanti jawe jaskatima.",
		KeyFallbackError: "Pampachamai, jaskaraon jato nete oraonbo non jaskaraon iki bain.\n" +
			"Jatonra iki jaskaraon wesna, nete centro de salud rabi o hospital rabi jakanai.",
	},
}

// Text returns the static message for a language and key.  Languages
// without a table resolve to the default language's table.
func Text(lang Language, key Key) string {
	table, ok := messages[lang]
	if !ok {
		table = messages[DefaultLanguage]
	}
	return table[key]
}

// Disclaimer returns the full safety notice shown at conversation start and
// on backend failure.
func Disclaimer(lang Language) string {
	return Text(lang, KeyDisclaimer)
}

// ShortDisclaimer returns the brief reminder appended to every generated
// answer.
func ShortDisclaimer(lang Language) string {
	return Text(lang, KeyShortDisclaimer)
}
