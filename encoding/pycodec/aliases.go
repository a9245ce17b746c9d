package pycodec

// aliasTable maps Python-codec-style alias names onto canonical names.
// Lookup keys are lowercase; a miss means the name is used verbatim.
var aliasTable = map[string]string{
	"646":              "ascii",
	"us-ascii":         "ascii",
	"big5-tw":          "big5",
	"csbig5":           "big5",
	"big5-hkscs":       "big5hkscs",
	"hkscs":            "big5hkscs",
	"ibm037":           "cp037",
	"ibm039":           "cp037",
	"273":              "cp273",
	"ibm273":           "cp273",
	"csibm273":         "cp273",
	"ebcdic-cp-he":     "cp424",
	"ibm424":           "cp424",
	"437":              "cp437",
	"ibm437":           "cp437",
	"ebcdic-cp-be":     "cp500",
	"ebcdic-cp-ch":     "cp500",
	"ibm500":           "cp500",
	"ibm775":           "cp775",
	"850":              "cp850",
	"ibm850":           "cp850",
	"852":              "cp852",
	"ibm852":           "cp852",
	"855":              "cp855",
	"ibm855":           "cp855",
	"857":              "cp857",
	"ibm857":           "cp857",
	"858":              "cp858",
	"ibm858":           "cp858",
	"860":              "cp860",
	"ibm860":           "cp860",
	"861":              "cp861",
	"cp-is":            "cp861",
	"ibm861":           "cp861",
	"862":              "cp862",
	"ibm862":           "cp862",
	"863":              "cp863",
	"ibm863":           "cp863",
	"ibm864":           "cp864",
	"865":              "cp865",
	"ibm865":           "cp865",
	"866":              "cp866",
	"ibm866":           "cp866",
	"869":              "cp869",
	"cp-gr":            "cp869",
	"ibm869":           "cp869",
	"932":              "cp932",
	"ms932":            "cp932",
	"mskanji":          "cp932",
	"ms-kanji":         "cp932",
	"windows-31j":      "cp932",
	"949":              "cp949",
	"ms949":            "cp949",
	"uhc":              "cp949",
	"950":              "cp950",
	"ms950":            "cp950",
	"ibm1026":          "cp1026",
	"1125":             "cp1125",
	"ibm1125":          "cp1125",
	"cp866u":           "cp1125",
	"ruscii":           "cp1125",
	"ibm1140":          "cp1140",
	"windows-1250":     "cp1250",
	"windows-1251":     "cp1251",
	"windows-1252":     "cp1252",
	"windows-1253":     "cp1253",
	"windows-1254":     "cp1254",
	"windows-1255":     "cp1255",
	"windows-1256":     "cp1256",
	"windows-1257":     "cp1257",
	"windows-1258":     "cp1258",
	"eucjp":            "euc_jp",
	"ujis":             "euc_jp",
	"u-jis":            "euc_jp",
	"jisx0213":         "euc_jis_2004",
	"eucjis2004":       "euc_jis_2004",
	"eucjisx0213":      "euc_jisx0213",
	"euckr":            "euc_kr",
	"korean":           "euc_kr",
	"ksc5601":          "euc_kr",
	"ks_c-5601":        "euc_kr",
	"ks_c-5601-1987":   "euc_kr",
	"ksx1001":          "euc_kr",
	"ks_x-1001":        "euc_kr",
	"chinese":          "gb2312",
	"csiso58gb231280":  "gb2312",
	"euc-cn":           "gb2312",
	"euccn":            "gb2312",
	"eucgb2312-cn":     "gb2312",
	"gb2312-1980":      "gb2312",
	"gb2312-80":        "gb2312",
	"iso-ir-58":        "gb2312",
	"936":              "gbk",
	"cp936":            "gbk",
	"ms936":            "gbk",
	"gb18030-2000":     "gb18030",
	"hzgb":             "hz",
	"hz-gb":            "hz",
	"hz-gb-2312":       "hz",
	"csiso2022jp":      "iso2022_jp",
	"iso2022jp":        "iso2022_jp",
	"iso-2022-jp":      "iso2022_jp",
	"iso2022jp-1":      "iso2022_jp_1",
	"iso-2022-jp-1":    "iso2022_jp_1",
	"iso2022jp-2":      "iso2022_jp_2",
	"iso-2022-jp-2":    "iso2022_jp_2",
	"iso2022jp-2004":   "iso2022_jp_2004",
	"iso-2022-jp-2004": "iso2022_jp_2004",
	"iso2022jp-3":      "iso2022_jp_3",
	"iso-2022-jp-3":    "iso2022_jp_3",
	"iso2022jp-ext":    "iso2022_jp_ext",
	"iso-2022-jp-ext":  "iso2022_jp_ext",
	"csiso2022kr":      "iso2022_kr",
	"iso2022kr":        "iso2022_kr",
	"iso-2022-kr":      "iso2022_kr",
	"iso-8859-1":       "latin_1",
	"iso8859-1":        "latin_1",
	"8859":             "latin_1",
	"cp819":            "latin_1",
	"latin":            "latin_1",
	"latin1":           "latin_1",
	"l1":               "latin_1",
	"iso-8859-2":       "iso8859_2",
	"latin2":           "iso8859_2",
	"l2":               "iso8859_2",
	"iso-8859-3":       "iso8859_3",
	"latin3":           "iso8859_3",
	"l3":               "iso8859_3",
	"iso-8859-4":       "iso8859_4",
	"latin4":           "iso8859_4",
	"l4":               "iso8859_4",
	"iso-8859-5":       "iso8859_5",
	"cyrillic":         "iso8859_5",
	"iso-8859-6":       "iso8859_6",
	"arabic":           "iso8859_6",
	"iso-8859-7":       "iso8859_7",
	"greek":            "iso8859_7",
	"greek8":           "iso8859_7",
	"iso-8859-8":       "iso8859_8",
	"hebrew":           "iso8859_8",
	"iso-8859-9":       "iso8859_9",
	"latin5":           "iso8859_9",
	"l5":               "iso8859_9",
	"iso-8859-10":      "iso8859_10",
	"latin6":           "iso8859_10",
	"l6":               "iso8859_10",
	"iso-8859-11":      "iso8859_11",
	"thai":             "iso8859_11",
	"iso-8859-13":      "iso8859_13",
	"latin7":           "iso8859_13",
	"l7":               "iso8859_13",
	"iso-8859-14":      "iso8859_14",
	"latin8":           "iso8859_14",
	"l8":               "iso8859_14",
	"iso-8859-15":      "iso8859_15",
	"latin9":           "iso8859_15",
	"l9":               "iso8859_15",
	"iso-8859-16":      "iso8859_16",
	"latin10":          "iso8859_16",
	"l10":              "iso8859_16",
	"cp1361":           "johab",
	"ms1361":           "johab",
	"kz_1048":          "kz1048",
	"strk1048_2002":    "kz1048",
	"rk1048":           "kz1048",
	"maccyrillic":      "mac_cyrillic",
	"macgreek":         "mac_greek",
	"maciceland":       "mac_iceland",
	"maclatin2":        "mac_latin2",
	"maccentraleurope": "mac_latin2",
	"mac_centeuro":     "mac_latin2",
	"macroman":         "mac_roman",
	"macintosh":        "mac_roman",
	"macturkish":       "mac_turkish",
	"csptcp154":        "ptcp154",
	"pt154":            "ptcp154",
	"cp154":            "ptcp154",
	"cyrillic-asian":   "ptcp154",
	"csshiftjis":       "shift_jis",
	"shiftjis":         "shift_jis",
	"sjis":             "shift_jis",
	"s_jis":            "shift_jis",
	"shiftjis2004":     "shift_jis_2004",
	"sjis_2004":        "shift_jis_2004",
	"sjis2004":         "shift_jis_2004",
	"shiftjisx0213":    "shift_jisx0213",
	"sjisx0213":        "shift_jisx0213",
	"s_jisx0213":       "shift_jisx0213",
	"u32":              "utf_32",
	"utf32":            "utf_32",
	"utf-32be":         "utf_32_be",
	"utf-32le":         "utf_32_le",
	"u16":              "utf_16",
	"utf16":            "utf_16",
	"utf-16be":         "utf_16_be",
	"utf-16le":         "utf_16_le",
	"u7":               "utf_7",
	"unicode-1-1-utf-7": "utf_7",
	"u8":               "utf_8",
	"utf":              "utf_8",
	"utf8":             "utf_8",
	"utf-8":            "utf_8",
	"cp65001":          "utf_8",
}
