package layout

// Inscript is the standard Government of India Inscript layout for Hindi.
var Inscript = KeyboardLayout{
	Name: "inscript",
	Rows: []Row{
		{
			// Silent slot. Some Inscript boards put a second candrabindu here,
			// which collides with X; it types nothing so nasals only come from x/X.
			{Key: "`", Output: "", ShiftKey: "~"},
			{Key: "1", Output: "१", ShiftKey: "!", ShiftOutput: "ऍ"},
			{Key: "2", Output: "२", ShiftKey: "@", ShiftOutput: "ॅ"},
			{Key: "3", Output: "३", ShiftKey: "#", ShiftOutput: "्र"},
			{Key: "4", Output: "४", ShiftKey: "$", ShiftOutput: "र्"},
			{Key: "5", Output: "५", ShiftKey: "%", ShiftOutput: "ज्ञ"},
			{Key: "6", Output: "६", ShiftKey: "^", ShiftOutput: "त्र"},
			{Key: "7", Output: "७", ShiftKey: "&", ShiftOutput: "क्ष"},
			{Key: "8", Output: "८", ShiftKey: "*", ShiftOutput: "श्र"},
			{Key: "9", Output: "९", ShiftKey: "(", ShiftOutput: "("},
			{Key: "0", Output: "०", ShiftKey: ")", ShiftOutput: ")"},
			{Key: "-", Output: "-", ShiftKey: "_", ShiftOutput: "ः"},
			{Key: "=", Output: "ृ", ShiftKey: "+", ShiftOutput: "ऋ"},
		},
		{
			{Key: "q", Output: "ौ", ShiftKey: "Q", ShiftOutput: "औ"},
			{Key: "w", Output: "ै", ShiftKey: "W", ShiftOutput: "ऐ"},
			{Key: "e", Output: "ा", ShiftKey: "E", ShiftOutput: "आ"},
			{Key: "r", Output: "ी", ShiftKey: "R", ShiftOutput: "ई"},
			{Key: "t", Output: "ू", ShiftKey: "T", ShiftOutput: "ऊ"},
			{Key: "y", Output: "ब", ShiftKey: "Y", ShiftOutput: "भ"},
			{Key: "u", Output: "ह", ShiftKey: "U", ShiftOutput: "ङ"},
			{Key: "i", Output: "ग", ShiftKey: "I", ShiftOutput: "घ"},
			{Key: "o", Output: "द", ShiftKey: "O", ShiftOutput: "ध"},
			{Key: "p", Output: "ज", ShiftKey: "P", ShiftOutput: "झ"},
			{Key: "[", Output: "ड", ShiftKey: "{", ShiftOutput: "ढ"},
			{Key: "]", Output: "़", ShiftKey: "}", ShiftOutput: "ञ"},
			{Key: "\\", Output: "ॉ", ShiftKey: "|", ShiftOutput: "ऑ"},
		},
		{
			{Key: "a", Output: "ो", ShiftKey: "A", ShiftOutput: "ओ"},
			{Key: "s", Output: "े", ShiftKey: "S", ShiftOutput: "ए"},
			{Key: "d", Output: "्", ShiftKey: "D", ShiftOutput: "अ"},
			{Key: "f", Output: "ि", ShiftKey: "F", ShiftOutput: "इ"},
			{Key: "g", Output: "ु", ShiftKey: "G", ShiftOutput: "उ"},
			{Key: "h", Output: "प", ShiftKey: "H", ShiftOutput: "फ"},
			{Key: "j", Output: "र", ShiftKey: "J", ShiftOutput: "ऱ"},
			{Key: "k", Output: "क", ShiftKey: "K", ShiftOutput: "ख"},
			{Key: "l", Output: "त", ShiftKey: "L", ShiftOutput: "थ"},
			{Key: ";", Output: "च", ShiftKey: ":", ShiftOutput: "छ"},
			{Key: "'", Output: "ट", ShiftKey: "\"", ShiftOutput: "ठ"},
		},
		{
			{Key: "z", Output: "ॆ", ShiftKey: "Z", ShiftOutput: "ऎ"},
			{Key: "x", Output: "ं", ShiftKey: "X", ShiftOutput: "ँ"},
			{Key: "c", Output: "म", ShiftKey: "C", ShiftOutput: "ण"},
			{Key: "v", Output: "न", ShiftKey: "V", ShiftOutput: "ऩ"},
			{Key: "b", Output: "व", ShiftKey: "B", ShiftOutput: "ऴ"},
			{Key: "n", Output: "ल", ShiftKey: "N", ShiftOutput: "ळ"},
			{Key: "m", Output: "स", ShiftKey: "M", ShiftOutput: "श"},
			{Key: ",", Output: ",", ShiftKey: "<", ShiftOutput: "ष"},
			{Key: ".", Output: ".", ShiftKey: ">", ShiftOutput: "।"},
			{Key: "/", Output: "य", ShiftKey: "?", ShiftOutput: "य़"},
		},
	},
}
