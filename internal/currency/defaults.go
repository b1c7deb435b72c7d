package currency

import "github.com/jmhartley/utter/internal/model"

// defaultDefinitions is the built-in currency table. Keyword lists are
// curated so that no keyword of one currency matches inside another's under
// the resolver's two-pass, longest-keyword-wins policy; adding a currency is
// a data change here, not a code change.
func defaultDefinitions() []model.CurrencyDefinition {
	return []model.CurrencyDefinition{
		{
			Code: "USD", Symbol: "$", DisplayName: "US Dollar", DecimalPlaces: 2,
			VoiceKeywords: []string{"dollar", "dollars", "usd", "$", "buck", "bucks"},
		},
		{
			Code: "EUR", Symbol: "€", DisplayName: "Euro", DecimalPlaces: 2,
			VoiceKeywords: []string{"euro", "euros", "eur", "€"},
		},
		{
			Code: "GBP", Symbol: "£", DisplayName: "British Pound", DecimalPlaces: 2,
			VoiceKeywords: []string{"pound", "pounds", "sterling", "quid", "gbp", "£"},
		},
		{
			Code: "AED", Symbol: "د.إ", DisplayName: "UAE Dirham", DecimalPlaces: 2, IsRightToLeft: true,
			VoiceKeywords: []string{"dirham", "dirhams", "aed", "د.إ"},
		},
		{
			Code: "SAR", Symbol: "ر.س", DisplayName: "Saudi Riyal", DecimalPlaces: 2, IsRightToLeft: true,
			VoiceKeywords: []string{"riyal", "riyals", "saudi riyal", "sar", "ر.س"},
		},
		{
			Code: "INR", Symbol: "₹", DisplayName: "Indian Rupee", DecimalPlaces: 2,
			VoiceKeywords: []string{"rupee", "rupees", "inr", "₹"},
		},
		{
			Code: "JPY", Symbol: "¥", DisplayName: "Japanese Yen", DecimalPlaces: 0,
			VoiceKeywords: []string{"yen", "jpy", "¥"},
		},
		{
			Code: "CNY", Symbol: "元", DisplayName: "Chinese Yuan", DecimalPlaces: 2,
			VoiceKeywords: []string{"yuan", "renminbi", "cny"},
		},
		{
			Code: "CAD", Symbol: "C$", DisplayName: "Canadian Dollar", DecimalPlaces: 2,
			VoiceKeywords: []string{"cad", "loonie", "loonies"},
		},
		{
			Code: "AUD", Symbol: "A$", DisplayName: "Australian Dollar", DecimalPlaces: 2,
			VoiceKeywords: []string{"aud", "aussie"},
		},
		{
			Code: "CHF", Symbol: "Fr", DisplayName: "Swiss Franc", DecimalPlaces: 2,
			VoiceKeywords: []string{"franc", "francs", "chf"},
		},
		{
			Code: "KWD", Symbol: "د.ك", DisplayName: "Kuwaiti Dinar", DecimalPlaces: 3, IsRightToLeft: true,
			VoiceKeywords: []string{"dinar", "dinars", "kwd", "د.ك"},
		},
		{
			Code: "QAR", Symbol: "ر.ق", DisplayName: "Qatari Riyal", DecimalPlaces: 2, IsRightToLeft: true,
			VoiceKeywords: []string{"qar", "ر.ق"},
		},
		{
			Code: "BHD", Symbol: ".د.ب", DisplayName: "Bahraini Dinar", DecimalPlaces: 3, IsRightToLeft: true,
			VoiceKeywords: []string{"bhd", ".د.ب"},
		},
		{
			Code: "OMR", Symbol: "ر.ع", DisplayName: "Omani Rial", DecimalPlaces: 3, IsRightToLeft: true,
			VoiceKeywords: []string{"rial", "rials", "omr", "ر.ع"},
		},
		{
			Code: "JOD", Symbol: "د.ا", DisplayName: "Jordanian Dinar", DecimalPlaces: 3, IsRightToLeft: true,
			VoiceKeywords: []string{"jod", "د.ا"},
		},
		{
			Code: "EGP", Symbol: "ج.م", DisplayName: "Egyptian Pound", DecimalPlaces: 2, IsRightToLeft: true,
			VoiceKeywords: []string{"egp", "ج.م"},
		},
		{
			Code: "TRY", Symbol: "₺", DisplayName: "Turkish Lira", DecimalPlaces: 2,
			VoiceKeywords: []string{"lira", "liras", "₺"},
		},
		{
			Code: "PKR", Symbol: "₨", DisplayName: "Pakistani Rupee", DecimalPlaces: 2,
			VoiceKeywords: []string{"pkr", "₨"},
		},
		{
			Code: "BRL", Symbol: "R$", DisplayName: "Brazilian Real", DecimalPlaces: 2,
			VoiceKeywords: []string{"reais", "brl"},
		},
		{
			Code: "MXN", Symbol: "Mex$", DisplayName: "Mexican Peso", DecimalPlaces: 2,
			VoiceKeywords: []string{"peso", "pesos", "mxn"},
		},
		{
			Code: "RUB", Symbol: "₽", DisplayName: "Russian Ruble", DecimalPlaces: 2,
			VoiceKeywords: []string{"ruble", "rubles", "rub", "₽"},
		},
		{
			Code: "KRW", Symbol: "₩", DisplayName: "South Korean Won", DecimalPlaces: 0,
			VoiceKeywords: []string{"won", "krw", "₩"},
		},
		{
			Code: "SEK", Symbol: "kr", DisplayName: "Swedish Krona", DecimalPlaces: 2,
			VoiceKeywords: []string{"krona", "kronor", "sek"},
		},
		{
			Code: "NOK", Symbol: "kr", DisplayName: "Norwegian Krone", DecimalPlaces: 2,
			VoiceKeywords: []string{"krone", "kroner", "nok"},
		},
		{
			Code: "ZAR", Symbol: "R", DisplayName: "South African Rand", DecimalPlaces: 2,
			VoiceKeywords: []string{"rand", "zar"},
		},
	}
}
