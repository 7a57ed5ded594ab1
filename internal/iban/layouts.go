package iban

func n(length int) Field { return Field{Length: length, Class: Numeric} }
func a(length int) Field { return Field{Length: length, Class: Alpha} }
func c(length int) Field { return Field{Length: length, Class: Alphanumeric} }

// layouts holds the BBAN field layout of every supported country.
// French overseas departments and collectivities share the FR layout.
var layouts = map[string][]Field{
	"AD": {n(8), c(12)},
	"AE": {n(3), n(16)},
	"AL": {n(3), n(4), n(1), c(16)},
	"AO": {n(21)},
	"AT": {n(5), n(11)},
	"AX": {n(14)},
	"AZ": {a(4), c(20)},
	"BA": {n(3), n(3), n(8), n(2)},
	"BE": {n(3), n(7), n(2)},
	"BF": {a(1), n(23)},
	"BG": {a(4), n(6), c(8)},
	"BH": {a(4), c(14)},
	"BI": {n(5), n(5), n(11), n(2)},
	"BJ": {a(1), n(23)},
	"BR": {n(23), a(1), c(1)},
	"BY": {a(4), n(4), c(16)},
	"CF": {n(5), n(5), n(11), n(2)},
	"CG": {n(5), n(5), n(11), n(2)},
	"CH": {n(5), c(12)},
	"CI": {a(1), n(23)},
	"CM": {n(5), n(5), n(11), n(2)},
	"CR": {n(18)},
	"CV": {n(21)},
	"CY": {n(3), n(5), c(16)},
	"CZ": {n(4), n(16)},
	"DE": {n(8), n(10)},
	"DJ": {n(5), n(5), n(11), n(2)},
	"DK": {n(4), n(9), n(1)},
	"DO": {a(4), n(20)},
	"DZ": {n(22)},
	"EE": {n(2), n(2), n(11), n(1)},
	"EG": {n(25)},
	"ES": {n(4), n(4), n(2), n(10)},
	"FI": {n(3), n(10), n(1)},
	"FO": {n(14)},
	"FR": {n(5), n(5), c(11), n(2)},
	"GA": {n(5), n(5), n(11), n(2)},
	"GB": {a(4), n(6), n(8)},
	"GE": {c(2), n(16)},
	"GF": {n(5), n(5), c(11), n(2)},
	"GG": {a(4), n(6), n(8)},
	"GI": {a(4), c(15)},
	"GL": {n(14)},
	"GN": {n(24)},
	"GP": {n(5), n(5), c(11), n(2)},
	"GQ": {n(5), n(5), n(11), n(2)},
	"GR": {n(3), n(4), c(16)},
	"GT": {c(24)},
	"GW": {c(2), n(19)},
	"HR": {n(7), n(10)},
	"HU": {n(3), n(4), n(16), n(1)},
	"IE": {a(4), n(6), n(8)},
	"IL": {n(19)},
	"IM": {a(4), n(6), n(8)},
	"IQ": {a(4), n(15)},
	"IR": {n(22)},
	"IS": {n(4), n(18)},
	"IT": {a(1), n(5), n(5), c(12)},
	"JE": {a(4), n(6), n(8)},
	"JO": {a(4), n(4), c(18)},
	"KM": {n(5), n(5), n(11), n(2)},
	"KW": {a(4), c(22)},
	"KZ": {n(3), c(13)},
	"LB": {n(4), c(20)},
	"LC": {a(4), c(24)},
	"LI": {n(5), c(12)},
	"LT": {n(5), n(11)},
	"LU": {n(3), c(13)},
	"LV": {a(4), c(13)},
	"LY": {n(21)},
	"MA": {n(24)},
	"MC": {n(5), n(5), c(11), n(2)},
	"MD": {c(2), c(18)},
	"ME": {n(3), n(13), n(2)},
	"MF": {n(5), n(5), c(11), n(2)},
	"MG": {n(5), n(5), n(11), n(2)},
	"MK": {n(3), n(10), n(2)},
	"ML": {a(1), n(23)},
	"MN": {n(16)},
	"MQ": {n(5), n(5), c(11), n(2)},
	"MR": {n(23)},
	"MT": {a(4), n(5), c(18)},
	"MU": {a(4), n(19), a(3)},
	"MZ": {n(21)},
	"NC": {n(5), n(5), c(11), n(2)},
	"NE": {a(1), n(23)},
	"NI": {a(4), n(20)},
	"NL": {a(4), n(10)},
	"NO": {n(4), n(6), n(1)},
	"OM": {n(3), c(16)},
	"PF": {n(5), n(5), c(11), n(2)},
	"PK": {c(4), n(16)},
	"PL": {n(3), n(4), n(1), n(16)},
	"PM": {n(5), n(5), c(11), n(2)},
	"PS": {c(4), n(21)},
	"PT": {n(4), n(4), n(11), n(2)},
	"QA": {a(4), c(21)},
	"RE": {n(5), n(5), c(11), n(2)},
	"RO": {a(4), c(16)},
	"RS": {n(3), n(13), n(2)},
	"RU": {n(14), c(15)},
	"SA": {n(2), c(18)},
	"SC": {a(4), n(20), a(3)},
	"SD": {n(14)},
	"SE": {n(3), n(16), n(1)},
	"SI": {n(2), n(3), n(8), n(2)},
	"SK": {n(4), n(16)},
	"SM": {a(1), n(10), c(12)},
	"SN": {a(1), n(23)},
	"SO": {n(19)},
	"ST": {n(21)},
	"SV": {a(4), n(20)},
	"TD": {n(5), n(5), n(11), n(2)},
	"TF": {n(5), n(5), c(11), n(2)},
	"TG": {a(1), n(23)},
	"TL": {n(19)},
	"TN": {n(20)},
	"TR": {n(5), n(1), c(16)},
	"UA": {n(6), c(19)},
	"VA": {n(18)},
	"VG": {c(4), n(16)},
	"WF": {n(5), n(5), c(11), n(2)},
	"XK": {n(16)},
	"YT": {n(5), n(5), c(11), n(2)},
}
