package pycodec

import (
	"github.com/yyc12345/YYCCommonplace-sub000/encoding/codepage"
	"github.com/yyc12345/YYCCommonplace-sub000/encoding/iconv"
)

// charsetTable maps canonical names onto the charset-name backend's
// identifiers.
var charsetTable = map[string]iconv.CodeName{
	"ascii":        "ASCII",
	"big5":         "BIG5",
	"big5hkscs":    "BIG5-HKSCS",
	"cp850":        "CP850",
	"cp862":        "CP862",
	"cp866":        "CP866",
	"cp874":        "windows-874",
	"cp932":        "Windows-31J",
	"cp949":        "windows-949",
	"cp950":        "Big5",
	"cp1250":       "CP1250",
	"cp1251":       "CP1251",
	"cp1252":       "CP1252",
	"cp1253":       "CP1253",
	"cp1254":       "CP1254",
	"cp1255":       "CP1255",
	"cp1256":       "CP1256",
	"cp1257":       "CP1257",
	"cp1258":       "CP1258",
	"euc_jp":       "EUC-JP",
	"euc_kr":       "EUC-KR",
	"gb2312":       "GBK",
	"gbk":          "GBK",
	"gb18030":      "GB18030",
	"hz":           "HZ-GB-2312",
	"iso2022_jp":   "ISO-2022-JP",
	"iso2022_jp_1": "ISO-2022-JP-1",
	"iso2022_jp_2": "ISO-2022-JP-2",
	"iso2022_kr":   "ISO-2022-KR",
	"latin_1":      "ISO-8859-1",
	"iso8859_2":    "ISO-8859-2",
	"iso8859_3":    "ISO-8859-3",
	"iso8859_4":    "ISO-8859-4",
	"iso8859_5":    "ISO-8859-5",
	"iso8859_6":    "ISO-8859-6",
	"iso8859_7":    "ISO-8859-7",
	"iso8859_8":    "ISO-8859-8",
	"iso8859_9":    "ISO-8859-9",
	"iso8859_10":   "ISO-8859-10",
	"iso8859_11":   "ISO-8859-11",
	"iso8859_13":   "ISO-8859-13",
	"iso8859_14":   "ISO-8859-14",
	"iso8859_15":   "ISO-8859-15",
	"iso8859_16":   "ISO-8859-16",
	"johab":        "JOHAB",
	"koi8_t":       "KOI8-T",
	"mac_cyrillic": "x-mac-cyrillic",
	"mac_greek":    "MacGreek",
	"mac_iceland":  "MacIceland",
	"mac_roman":    "macintosh",
	"mac_turkish":  "MacTurkish",
	"ptcp154":      "PT154",
	"shift_jis":    "SHIFT_JIS",
	"utf_32":       "UTF-32",
	"utf_32_be":    "UTF-32BE",
	"utf_32_le":    "UTF-32LE",
	"utf_16":       "UTF-16",
	"utf_16_be":    "UTF-16BE",
	"utf_16_le":    "UTF-16LE",
	"utf_7":        "UTF-7",
	"utf_8":        "UTF-8",
}

// codePageTable maps canonical names onto platform code-page numbers,
// for callers driving the numeric code-page backend.
var codePageTable = map[string]codepage.CodePage{
	"ascii":        437,
	"big5":         950,
	"cp037":        37,
	"cp437":        437,
	"cp500":        500,
	"cp720":        720,
	"cp737":        737,
	"cp775":        775,
	"cp850":        850,
	"cp852":        852,
	"cp855":        855,
	"cp857":        857,
	"cp858":        858,
	"cp860":        860,
	"cp861":        861,
	"cp862":        862,
	"cp863":        863,
	"cp864":        864,
	"cp865":        865,
	"cp866":        866,
	"cp869":        869,
	"cp874":        874,
	"cp875":        875,
	"cp932":        932,
	"cp949":        949,
	"cp950":        950,
	"cp1026":       1026,
	"cp1140":       1140,
	"cp1250":       1250,
	"cp1251":       1251,
	"cp1252":       1252,
	"cp1253":       1253,
	"cp1254":       1254,
	"cp1255":       1255,
	"cp1256":       1256,
	"cp1257":       1257,
	"cp1258":       1258,
	"euc_jp":       20932,
	"euc_kr":       51949,
	"gb2312":       936,
	"gbk":          936,
	"gb18030":      54936,
	"hz":           52936,
	"iso2022_jp":   50220,
	"iso2022_kr":   50225,
	"latin_1":      28591,
	"iso8859_2":    28592,
	"iso8859_3":    28593,
	"iso8859_4":    28594,
	"iso8859_5":    28595,
	"iso8859_6":    28596,
	"iso8859_7":    28597,
	"iso8859_8":    28598,
	"iso8859_9":    28599,
	"iso8859_13":   28603,
	"iso8859_15":   28605,
	"johab":        1361,
	"mac_cyrillic": 10007,
	"mac_greek":    10006,
	"mac_iceland":  10079,
	"mac_turkish":  10081,
	"shift_jis":    932,
	"utf_7":        65000,
	"utf_8":        65001,
}
