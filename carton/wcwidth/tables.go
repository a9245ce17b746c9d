package wcwidth

// boundary is an inclusive range of code points.
type boundary struct {
	first, last rune
}

// The tables below come from the classic wcwidth range data, pinned to
// the oldest Unicode version where the core ranges stabilized; the wide
// table also carries three emoji blocks (1F300-1F64F, 1F680-1F6FF,
// 1F900-1F9FF). They are sorted by first element and binary-searched
// directly.

var zeroWidth = []boundary{
	{0x00000, 0x00000}, // (nil)
	{0x000AD, 0x000AD}, // Soft Hyphen
	{0x00300, 0x0036F}, // Combining Grave Accent ..Combining Latin Small Le
	{0x00483, 0x00486}, // Combining Cyrillic Titlo..Combining Cyrillic Psili
	{0x00488, 0x00489}, // Combining Cyrillic Hundr..Combining Cyrillic Milli
	{0x00591, 0x005B9}, // Hebrew Accent Etnahta   ..Hebrew Point Holam
	{0x005BB, 0x005BD}, // Hebrew Point Qubuts     ..Hebrew Point Meteg
	{0x005BF, 0x005BF}, // Hebrew Point Rafe
	{0x005C1, 0x005C2}, // Hebrew Point Shin Dot   ..Hebrew Point Sin Dot
	{0x005C4, 0x005C5}, // Hebrew Mark Upper Dot   ..Hebrew Mark Lower Dot
	{0x005C7, 0x005C7}, // Hebrew Point Qamats Qatan
	{0x00600, 0x00603}, // Arabic Number Sign      ..Arabic Sign Safha
	{0x00610, 0x00615}, // Arabic Sign Sallallahou ..Arabic Small High Tah
	{0x0064B, 0x0065E}, // Arabic Fathatan         ..Arabic Fatha With Two Do
	{0x00670, 0x00670}, // Arabic Letter Superscript Alef
	{0x006D6, 0x006E4}, // Arabic Small High Ligatu..Arabic Small High Madda
	{0x006E7, 0x006E8}, // Arabic Small High Yeh   ..Arabic Small High Noon
	{0x006EA, 0x006ED}, // Arabic Empty Centre Low ..Arabic Small Low Meem
	{0x0070F, 0x0070F}, // Syriac Abbreviation Mark
	{0x00711, 0x00711}, // Syriac Letter Superscript Alaph
	{0x00730, 0x0074A}, // Syriac Pthaha Above     ..Syriac Barrekh
	{0x007A6, 0x007B0}, // Thaana Abafili          ..Thaana Sukun
	{0x00901, 0x00903}, // Devanagari Sign Candrabi..Devanagari Sign Visarga
	{0x0093C, 0x0093C}, // Devanagari Sign Nukta
	{0x0093E, 0x0094D}, // Devanagari Vowel Sign Aa..Devanagari Sign Virama
	{0x00951, 0x00954}, // Devanagari Stress Sign U..Devanagari Acute Accent
	{0x00962, 0x00963}, // Devanagari Vowel Sign Vo..Devanagari Vowel Sign Vo
	{0x00981, 0x00983}, // Bengali Sign Candrabindu..Bengali Sign Visarga
	{0x009BC, 0x009BC}, // Bengali Sign Nukta
	{0x009BE, 0x009C4}, // Bengali Vowel Sign Aa   ..Bengali Vowel Sign Vocal
	{0x009C7, 0x009C8}, // Bengali Vowel Sign E    ..Bengali Vowel Sign Ai
	{0x009CB, 0x009CD}, // Bengali Vowel Sign O    ..Bengali Sign Virama
	{0x009D7, 0x009D7}, // Bengali Au Length Mark
	{0x009E2, 0x009E3}, // Bengali Vowel Sign Vocal..Bengali Vowel Sign Vocal
	{0x00A01, 0x00A03}, // Gurmukhi Sign Adak Bindi..Gurmukhi Sign Visarga
	{0x00A3C, 0x00A3C}, // Gurmukhi Sign Nukta
	{0x00A3E, 0x00A42}, // Gurmukhi Vowel Sign Aa  ..Gurmukhi Vowel Sign Uu
	{0x00A47, 0x00A48}, // Gurmukhi Vowel Sign Ee  ..Gurmukhi Vowel Sign Ai
	{0x00A4B, 0x00A4D}, // Gurmukhi Vowel Sign Oo  ..Gurmukhi Sign Virama
	{0x00A70, 0x00A71}, // Gurmukhi Tippi          ..Gurmukhi Addak
	{0x00A81, 0x00A83}, // Gujarati Sign Candrabind..Gujarati Sign Visarga
	{0x00ABC, 0x00ABC}, // Gujarati Sign Nukta
	{0x00ABE, 0x00AC5}, // Gujarati Vowel Sign Aa  ..Gujarati Vowel Sign Cand
	{0x00AC7, 0x00AC9}, // Gujarati Vowel Sign E   ..Gujarati Vowel Sign Cand
	{0x00ACB, 0x00ACD}, // Gujarati Vowel Sign O   ..Gujarati Sign Virama
	{0x00AE2, 0x00AE3}, // Gujarati Vowel Sign Voca..Gujarati Vowel Sign Voca
	{0x00B01, 0x00B03}, // Oriya Sign Candrabindu  ..Oriya Sign Visarga
	{0x00B3C, 0x00B3C}, // Oriya Sign Nukta
	{0x00B3E, 0x00B43}, // Oriya Vowel Sign Aa     ..Oriya Vowel Sign Vocalic
	{0x00B47, 0x00B48}, // Oriya Vowel Sign E      ..Oriya Vowel Sign Ai
	{0x00B4B, 0x00B4D}, // Oriya Vowel Sign O      ..Oriya Sign Virama
	{0x00B56, 0x00B57}, // Oriya Ai Length Mark    ..Oriya Au Length Mark
	{0x00B82, 0x00B82}, // Tamil Sign Anusvara
	{0x00BBE, 0x00BC2}, // Tamil Vowel Sign Aa     ..Tamil Vowel Sign Uu
	{0x00BC6, 0x00BC8}, // Tamil Vowel Sign E      ..Tamil Vowel Sign Ai
	{0x00BCA, 0x00BCD}, // Tamil Vowel Sign O      ..Tamil Sign Virama
	{0x00BD7, 0x00BD7}, // Tamil Au Length Mark
	{0x00C01, 0x00C03}, // Telugu Sign Candrabindu ..Telugu Sign Visarga
	{0x00C3E, 0x00C44}, // Telugu Vowel Sign Aa    ..Telugu Vowel Sign Vocali
	{0x00C46, 0x00C48}, // Telugu Vowel Sign E     ..Telugu Vowel Sign Ai
	{0x00C4A, 0x00C4D}, // Telugu Vowel Sign O     ..Telugu Sign Virama
	{0x00C55, 0x00C56}, // Telugu Length Mark      ..Telugu Ai Length Mark
	{0x00C82, 0x00C83}, // Kannada Sign Anusvara   ..Kannada Sign Visarga
	{0x00CBC, 0x00CBC}, // Kannada Sign Nukta
	{0x00CBE, 0x00CC4}, // Kannada Vowel Sign Aa   ..Kannada Vowel Sign Vocal
	{0x00CC6, 0x00CC8}, // Kannada Vowel Sign E    ..Kannada Vowel Sign Ai
	{0x00CCA, 0x00CCD}, // Kannada Vowel Sign O    ..Kannada Sign Virama
	{0x00CD5, 0x00CD6}, // Kannada Length Mark     ..Kannada Ai Length Mark
	{0x00D02, 0x00D03}, // Malayalam Sign Anusvara ..Malayalam Sign Visarga
	{0x00D3E, 0x00D43}, // Malayalam Vowel Sign Aa ..Malayalam Vowel Sign Voc
	{0x00D46, 0x00D48}, // Malayalam Vowel Sign E  ..Malayalam Vowel Sign Ai
	{0x00D4A, 0x00D4D}, // Malayalam Vowel Sign O  ..Malayalam Sign Virama
	{0x00D57, 0x00D57}, // Malayalam Au Length Mark
	{0x00D82, 0x00D83}, // Sinhala Sign Anusvaraya ..Sinhala Sign Visargaya
	{0x00DCA, 0x00DCA}, // Sinhala Sign Al-lakuna
	{0x00DCF, 0x00DD4}, // Sinhala Vowel Sign Aela-..Sinhala Vowel Sign Ketti
	{0x00DD6, 0x00DD6}, // Sinhala Vowel Sign Diga Paa-pilla
	{0x00DD8, 0x00DDF}, // Sinhala Vowel Sign Gaett..Sinhala Vowel Sign Gayan
	{0x00DF2, 0x00DF3}, // Sinhala Vowel Sign Diga ..Sinhala Vowel Sign Diga
	{0x00E31, 0x00E31}, // Thai Character Mai Han-akat
	{0x00E34, 0x00E3A}, // Thai Character Sara I   ..Thai Character Phinthu
	{0x00E47, 0x00E4E}, // Thai Character Maitaikhu..Thai Character Yamakkan
	{0x00EB1, 0x00EB1}, // Lao Vowel Sign Mai Kan
	{0x00EB4, 0x00EB9}, // Lao Vowel Sign I        ..Lao Vowel Sign Uu
	{0x00EBB, 0x00EBC}, // Lao Vowel Sign Mai Kon  ..Lao Semivowel Sign Lo
	{0x00EC8, 0x00ECD}, // Lao Tone Mai Ek         ..Lao Niggahita
	{0x00F18, 0x00F19}, // Tibetan Astrological Sig..Tibetan Astrological Sig
	{0x00F35, 0x00F35}, // Tibetan Mark Ngas Bzung Nyi Zla
	{0x00F37, 0x00F37}, // Tibetan Mark Ngas Bzung Sgor Rtags
	{0x00F39, 0x00F39}, // Tibetan Mark Tsa -phru
	{0x00F3E, 0x00F3F}, // Tibetan Sign Yar Tshes  ..Tibetan Sign Mar Tshes
	{0x00F71, 0x00F84}, // Tibetan Vowel Sign Aa   ..Tibetan Mark Halanta
	{0x00F86, 0x00F87}, // Tibetan Sign Lci Rtags  ..Tibetan Sign Yang Rtags
	{0x00F90, 0x00F97}, // Tibetan Subjoined Letter..Tibetan Subjoined Letter
	{0x00F99, 0x00FBC}, // Tibetan Subjoined Letter..Tibetan Subjoined Letter
	{0x00FC6, 0x00FC6}, // Tibetan Symbol Padma Gdan
	{0x0102C, 0x01032}, // Myanmar Vowel Sign Aa   ..Myanmar Vowel Sign Ai
	{0x01036, 0x01039}, // Myanmar Sign Anusvara   ..Myanmar Sign Virama
	{0x01056, 0x01059}, // Myanmar Vowel Sign Vocal..Myanmar Vowel Sign Vocal
	{0x01160, 0x011FF}, // Hangul Jungseong Filler ..Hangul Jongseong Ssangni
	{0x0135F, 0x0135F}, // Ethiopic Combining Gemination Mark
	{0x01712, 0x01714}, // Tagalog Vowel Sign I    ..Tagalog Sign Virama
	{0x01732, 0x01734}, // Hanunoo Vowel Sign I    ..Hanunoo Sign Pamudpod
	{0x01752, 0x01753}, // Buhid Vowel Sign I      ..Buhid Vowel Sign U
	{0x01772, 0x01773}, // Tagbanwa Vowel Sign I   ..Tagbanwa Vowel Sign U
	{0x017B4, 0x017D3}, // Khmer Vowel Inherent Aq ..Khmer Sign Bathamasat
	{0x017DD, 0x017DD}, // Khmer Sign Atthacan
	{0x0180B, 0x0180D}, // Mongolian Free Variation..Mongolian Free Variation
	{0x018A9, 0x018A9}, // Mongolian Letter Ali Gali Dagalga
	{0x01920, 0x0192B}, // Limbu Vowel Sign A      ..Limbu Subjoined Letter W
	{0x01930, 0x0193B}, // Limbu Small Letter Ka   ..Limbu Sign Sa-i
	{0x019B0, 0x019C0}, // New Tai Lue Vowel Sign V..New Tai Lue Vowel Sign I
	{0x019C8, 0x019C9}, // New Tai Lue Tone Mark-1 ..New Tai Lue Tone Mark-2
	{0x01A17, 0x01A1B}, // Buginese Vowel Sign I   ..Buginese Vowel Sign Ae
	{0x01DC0, 0x01DC3}, // Combining Dotted Grave A..Combining Suspension Mar
	{0x0200B, 0x0200F}, // Zero Width Space        ..Right-to-left Mark
	{0x02028, 0x0202E}, // Line Separator          ..Right-to-left Override
	{0x02060, 0x02063}, // Word Joiner             ..Invisible Separator
	{0x0206A, 0x0206F}, // Inhibit Symmetric Swappi..Nominal Digit Shapes
	{0x020D0, 0x020EB}, // Combining Left Harpoon A..Combining Long Double So
	{0x0302A, 0x0302F}, // Ideographic Level Tone M..Hangul Double Dot Tone M
	{0x03099, 0x0309A}, // Combining Katakana-hirag..Combining Katakana-hirag
	{0x0A802, 0x0A802}, // Syloti Nagri Sign Dvisvara
	{0x0A806, 0x0A806}, // Syloti Nagri Sign Hasanta
	{0x0A80B, 0x0A80B}, // Syloti Nagri Sign Anusvara
	{0x0A823, 0x0A827}, // Syloti Nagri Vowel Sign ..Syloti Nagri Vowel Sign
	{0x0D7B0, 0x0D7FF}, // Hangul Jungseong O-yeo  ..(nil)
	{0x0FB1E, 0x0FB1E}, // Hebrew Point Judeo-spanish Varika
	{0x0FE00, 0x0FE0F}, // Variation Selector-1    ..Variation Selector-16
	{0x0FE20, 0x0FE23}, // Combining Ligature Left ..Combining Double Tilde R
	{0x0FEFF, 0x0FEFF}, // Zero Width No-break Space
	{0x0FFF9, 0x0FFFB}, // Interlinear Annotation A..Interlinear Annotation T
	{0x10A01, 0x10A03}, // Kharoshthi Vowel Sign I ..Kharoshthi Vowel Sign Vo
	{0x10A05, 0x10A06}, // Kharoshthi Vowel Sign E ..Kharoshthi Vowel Sign O
	{0x10A0C, 0x10A0F}, // Kharoshthi Vowel Length ..Kharoshthi Sign Visarga
	{0x10A38, 0x10A3A}, // Kharoshthi Sign Bar Abov..Kharoshthi Sign Dot Belo
	{0x10A3F, 0x10A3F}, // Kharoshthi Virama
	{0x1D165, 0x1D169}, // Musical Symbol Combining..Musical Symbol Combining
	{0x1D16D, 0x1D182}, // Musical Symbol Combining..Musical Symbol Combining
	{0x1D185, 0x1D18B}, // Musical Symbol Combining..Musical Symbol Combining
	{0x1D1AA, 0x1D1AD}, // Musical Symbol Combining..Musical Symbol Combining
	{0x1D242, 0x1D244}, // Combining Greek Musical ..Combining Greek Musical
	{0xE0001, 0xE0001}, // Language Tag
	{0xE0020, 0xE007F}, // Tag Space               ..Cancel Tag
	{0xE0100, 0xE01EF}, // Variation Selector-17   ..Variation Selector-256
}

var wideEastAsian = []boundary{
	{0x01100, 0x01159}, // Hangul Choseong Kiyeok  ..Hangul Choseong Yeorinhi
	{0x0115F, 0x0115F}, // Hangul Choseong Filler
	{0x02329, 0x0232A}, // Left-pointing Angle Brac..Right-pointing Angle Bra
	{0x02E80, 0x02E99}, // Cjk Radical Repeat      ..Cjk Radical Rap
	{0x02E9B, 0x02EF3}, // Cjk Radical Choke       ..Cjk Radical C-simplified
	{0x02F00, 0x02FD5}, // Kangxi Radical One      ..Kangxi Radical Flute
	{0x02FF0, 0x02FFB}, // Ideographic Description ..Ideographic Description
	{0x03000, 0x03029}, // Ideographic Space       ..Hangzhou Numeral Nine
	{0x03030, 0x0303E}, // Wavy Dash               ..Ideographic Variation In
	{0x03041, 0x03096}, // Hiragana Letter Small A ..Hiragana Letter Small Ke
	{0x0309B, 0x030FF}, // Katakana-hiragana Voiced..Katakana Digraph Koto
	{0x03105, 0x0312C}, // Bopomofo Letter B       ..Bopomofo Letter Gn
	{0x03131, 0x0318E}, // Hangul Letter Kiyeok    ..Hangul Letter Araeae
	{0x03190, 0x031B7}, // Ideographic Annotation L..Bopomofo Final Letter H
	{0x031C0, 0x031CF}, // Cjk Stroke T            ..Cjk Stroke N
	{0x031F0, 0x0321E}, // Katakana Letter Small Ku..Parenthesized Korean Cha
	{0x03220, 0x03243}, // Parenthesized Ideograph ..Parenthesized Ideograph
	{0x03250, 0x032FE}, // Partnership Sign        ..Circled Katakana Wo
	{0x03300, 0x04DB5}, // Square Apaato           ..Cjk Unified Ideograph-4d
	{0x04E00, 0x09FBB}, // Cjk Unified Ideograph-4e..Cjk Unified Ideograph-9f
	{0x0A000, 0x0A48C}, // Yi Syllable It          ..Yi Syllable Yyr
	{0x0A490, 0x0A4C6}, // Yi Radical Qot          ..Yi Radical Ke
	{0x0AC00, 0x0D7A3}, // Hangul Syllable Ga      ..Hangul Syllable Hih
	{0x0F900, 0x0FA2D}, // Cjk Compatibility Ideogr..Cjk Compatibility Ideogr
	{0x0FA30, 0x0FA6A}, // Cjk Compatibility Ideogr..Cjk Compatibility Ideogr
	{0x0FA70, 0x0FAD9}, // Cjk Compatibility Ideogr..Cjk Compatibility Ideogr
	{0x0FE10, 0x0FE19}, // Presentation Form For Ve..Presentation Form For Ve
	{0x0FE30, 0x0FE52}, // Presentation Form For Ve..Small Full Stop
	{0x0FE54, 0x0FE66}, // Small Semicolon         ..Small Equals Sign
	{0x0FE68, 0x0FE6B}, // Small Reverse Solidus   ..Small Commercial At
	{0x0FF01, 0x0FF60}, // Fullwidth Exclamation Ma..Fullwidth Right White Pa
	{0x0FFE0, 0x0FFE6}, // Fullwidth Cent Sign     ..Fullwidth Won Sign
	{0x1F300, 0x1F64F}, // Cyclone                 ..Person With Folded Hands
	{0x1F680, 0x1F6FF}, // Rocket                  ..(transport and map)
	{0x1F900, 0x1F9FF}, // Circled Cross Pommee    ..(supplemental symbols)
	{0x20000, 0x2FFFD}, // Cjk Unified Ideograph-20..(nil)
	{0x30000, 0x3FFFD}, // Cjk Unified Ideograph-30..(nil)
}

var vs16NarrowToWide = []boundary{
	{0x00023, 0x00023}, // Number Sign
	{0x0002A, 0x0002A}, // Asterisk
	{0x00030, 0x00039}, // Digit Zero              ..Digit Nine
	{0x000A9, 0x000A9}, // Copyright Sign
	{0x000AE, 0x000AE}, // Registered Sign
	{0x0203C, 0x0203C}, // Double Exclamation Mark
	{0x02049, 0x02049}, // Exclamation Question Mark
	{0x02122, 0x02122}, // Trade Mark Sign
	{0x02139, 0x02139}, // Information Source
	{0x02194, 0x02199}, // Left Right Arrow        ..South West Arrow
	{0x021A9, 0x021AA}, // Leftwards Arrow With Hoo..Rightwards Arrow With Ho
	{0x02328, 0x02328}, // Keyboard
	{0x023CF, 0x023CF}, // Eject Symbol
	{0x023ED, 0x023EF}, // Black Right-pointing Dou..Black Right-pointing Tri
	{0x023F1, 0x023F2}, // Stopwatch               ..Timer Clock
	{0x023F8, 0x023FA}, // Double Vertical Bar     ..Black Circle For Record
	{0x024C2, 0x024C2}, // Circled Latin Capital Letter M
	{0x025AA, 0x025AB}, // Black Small Square      ..White Small Square
	{0x025B6, 0x025B6}, // Black Right-pointing Triangle
	{0x025C0, 0x025C0}, // Black Left-pointing Triangle
	{0x025FB, 0x025FC}, // White Medium Square     ..Black Medium Square
	{0x02600, 0x02604}, // Black Sun With Rays     ..Comet
	{0x0260E, 0x0260E}, // Black Telephone
	{0x02611, 0x02611}, // Ballot Box With Check
	{0x02618, 0x02618}, // Shamrock
	{0x0261D, 0x0261D}, // White Up Pointing Index
	{0x02620, 0x02620}, // Skull And Crossbones
	{0x02622, 0x02623}, // Radioactive Sign        ..Biohazard Sign
	{0x02626, 0x02626}, // Orthodox Cross
	{0x0262A, 0x0262A}, // Star And Crescent
	{0x0262E, 0x0262F}, // Peace Symbol            ..Yin Yang
	{0x02638, 0x0263A}, // Wheel Of Dharma         ..White Smiling Face
	{0x02640, 0x02640}, // Female Sign
	{0x02642, 0x02642}, // Male Sign
	{0x0265F, 0x02660}, // Black Chess Pawn        ..Black Spade Suit
	{0x02663, 0x02663}, // Black Club Suit
	{0x02665, 0x02666}, // Black Heart Suit        ..Black Diamond Suit
	{0x02668, 0x02668}, // Hot Springs
	{0x0267B, 0x0267B}, // Black Universal Recycling Symbol
	{0x0267E, 0x0267E}, // Permanent Paper Sign
	{0x02692, 0x02692}, // Hammer And Pick
	{0x02694, 0x02697}, // Crossed Swords          ..Alembic
	{0x02699, 0x02699}, // Gear
	{0x0269B, 0x0269C}, // Atom Symbol             ..Fleur-de-lis
	{0x026A0, 0x026A0}, // Warning Sign
	{0x026A7, 0x026A7}, // Male With Stroke And Male And Female Sign
	{0x026B0, 0x026B1}, // Coffin                  ..Funeral Urn
	{0x026C8, 0x026C8}, // Thunder Cloud And Rain
	{0x026CF, 0x026CF}, // Pick
	{0x026D1, 0x026D1}, // Helmet With White Cross
	{0x026D3, 0x026D3}, // Chains
	{0x026E9, 0x026E9}, // Shinto Shrine
	{0x026F0, 0x026F1}, // Mountain                ..Umbrella On Ground
	{0x026F4, 0x026F4}, // Ferry
	{0x026F7, 0x026F9}, // Skier                   ..Person With Ball
	{0x02702, 0x02702}, // Black Scissors
	{0x02708, 0x02709}, // Airplane                ..Envelope
	{0x0270C, 0x0270D}, // Victory Hand            ..Writing Hand
	{0x0270F, 0x0270F}, // Pencil
	{0x02712, 0x02712}, // Black Nib
	{0x02714, 0x02714}, // Heavy Check Mark
	{0x02716, 0x02716}, // Heavy Multiplication X
	{0x0271D, 0x0271D}, // Latin Cross
	{0x02721, 0x02721}, // Star Of David
	{0x02733, 0x02734}, // Eight Spoked Asterisk   ..Eight Pointed Black Star
	{0x02744, 0x02744}, // Snowflake
	{0x02747, 0x02747}, // Sparkle
	{0x02763, 0x02764}, // Heavy Heart Exclamation ..Heavy Black Heart
	{0x027A1, 0x027A1}, // Black Rightwards Arrow
	{0x02934, 0x02935}, // Arrow Pointing Rightward..Arrow Pointing Rightward
	{0x02B05, 0x02B07}, // Leftwards Black Arrow   ..Downwards Black Arrow
	{0x1F170, 0x1F171}, // Negative Squared Latin C..Negative Squared Latin C
	{0x1F17E, 0x1F17F}, // Negative Squared Latin C..Negative Squared Latin C
	{0x1F321, 0x1F321}, // Thermometer
	{0x1F324, 0x1F32C}, // White Sun With Small Clo..Wind Blowing Face
	{0x1F336, 0x1F336}, // Hot Pepper
	{0x1F37D, 0x1F37D}, // Fork And Knife With Plate
	{0x1F396, 0x1F397}, // Military Medal          ..Reminder Ribbon
	{0x1F399, 0x1F39B}, // Studio Microphone       ..Control Knobs
	{0x1F39E, 0x1F39F}, // Film Frames             ..Admission Tickets
	{0x1F3CB, 0x1F3CE}, // Weight Lifter           ..Racing Car
	{0x1F3D4, 0x1F3DF}, // Snow Capped Mountain    ..Stadium
	{0x1F3F3, 0x1F3F3}, // Waving White Flag
	{0x1F3F5, 0x1F3F5}, // Rosette
	{0x1F3F7, 0x1F3F7}, // Label
	{0x1F43F, 0x1F43F}, // Chipmunk
	{0x1F441, 0x1F441}, // Eye
	{0x1F4FD, 0x1F4FD}, // Film Projector
	{0x1F549, 0x1F54A}, // Om Symbol               ..Dove Of Peace
	{0x1F56F, 0x1F570}, // Candle                  ..Mantelpiece Clock
	{0x1F573, 0x1F579}, // Hole                    ..Joystick
	{0x1F587, 0x1F587}, // Linked Paperclips
	{0x1F58A, 0x1F58D}, // Lower Left Ballpoint Pen..Lower Left Crayon
	{0x1F590, 0x1F590}, // Raised Hand With Fingers Splayed
	{0x1F5A5, 0x1F5A5}, // Desktop Computer
	{0x1F5A8, 0x1F5A8}, // Printer
	{0x1F5B1, 0x1F5B2}, // Three Button Mouse      ..Trackball
	{0x1F5BC, 0x1F5BC}, // Frame With Picture
	{0x1F5C2, 0x1F5C4}, // Card Index Dividers     ..File Cabinet
	{0x1F5D1, 0x1F5D3}, // Wastebasket             ..Spiral Calendar Pad
	{0x1F5DC, 0x1F5DE}, // Compression             ..Rolled-up Newspaper
	{0x1F5E1, 0x1F5E1}, // Dagger Knife
	{0x1F5E3, 0x1F5E3}, // Speaking Head In Silhouette
	{0x1F5E8, 0x1F5E8}, // Left Speech Bubble
	{0x1F5EF, 0x1F5EF}, // Right Anger Bubble
	{0x1F5F3, 0x1F5F3}, // Ballot Box With Ballot
	{0x1F5FA, 0x1F5FA}, // World Map
	{0x1F6CB, 0x1F6CB}, // Couch And Lamp
	{0x1F6CD, 0x1F6CF}, // Shopping Bags           ..Bed
	{0x1F6E0, 0x1F6E5}, // Hammer And Wrench       ..Motor Boat
	{0x1F6E9, 0x1F6E9}, // Small Airplane
	{0x1F6F0, 0x1F6F0}, // Satellite
	{0x1F6F3, 0x1F6F3}, // Passenger Ship
}

// bisearch reports whether ucs falls in one of table's inclusive ranges.
func bisearch(ucs rune, table []boundary) bool {
	if len(table) == 0 || ucs < table[0].first || ucs > table[len(table)-1].last {
		return false
	}
	lo, hi := 0, len(table)-1
	for hi >= lo {
		mid := (lo + hi) / 2
		switch {
		case ucs > table[mid].last:
			lo = mid + 1
		case ucs < table[mid].first:
			hi = mid - 1
		default:
			return true
		}
	}
	return false
}
