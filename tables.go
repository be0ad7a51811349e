package recode

// windows1252Table maps the characters Windows-1252 places in 0x80-0x9F to
// their byte. The slots 0x81, 0x8D, 0x8F, 0x90 and 0x9D are undefined.
var windows1252Table = map[rune]byte{
	'€': 0x80,
	'‚': 0x82,
	'ƒ': 0x83,
	'„': 0x84,
	'…': 0x85,
	'†': 0x86,
	'‡': 0x87,
	'ˆ': 0x88,
	'‰': 0x89,
	'Š': 0x8A,
	'‹': 0x8B,
	'Œ': 0x8C,
	'Ž': 0x8E,
	'‘': 0x91,
	'’': 0x92,
	'“': 0x93,
	'”': 0x94,
	'•': 0x95,
	'–': 0x96,
	'—': 0x97,
	'˜': 0x98,
	'™': 0x99,
	'š': 0x9A,
	'›': 0x9B,
	'œ': 0x9C,
	'ž': 0x9E,
	'Ÿ': 0x9F,
}

// hexDigits maps hex digit characters, either case, to their value.
var hexDigits = map[byte]byte{
	'0': 0x0, '1': 0x1, '2': 0x2, '3': 0x3, '4': 0x4,
	'5': 0x5, '6': 0x6, '7': 0x7, '8': 0x8, '9': 0x9,
	'a': 0xa, 'b': 0xb, 'c': 0xc, 'd': 0xd, 'e': 0xe, 'f': 0xf,
	'A': 0xa, 'B': 0xb, 'C': 0xc, 'D': 0xd, 'E': 0xe, 'F': 0xf,
}
