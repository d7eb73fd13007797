package layout

// Remington follows the typewriter arrangement that Hindi typing tests still
// use. Shift mostly adds a halant form or a sister letter; the top row keeps
// vowel signs so that shift turns a sign into its independent vowel.
var Remington = KeyboardLayout{
	Name: "remington",
	Rows: []Row{
		{
			{Key: "`", Output: "़", ShiftKey: "~", ShiftOutput: "ॅ"},
			{Key: "1", Output: "१"},
			{Key: "2", Output: "२"},
			{Key: "3", Output: "३"},
			{Key: "4", Output: "४"},
			{Key: "5", Output: "५"},
			{Key: "6", Output: "६"},
			{Key: "7", Output: "७"},
			{Key: "8", Output: "८"},
			{Key: "9", Output: "९"},
			{Key: "0", Output: "०"},
			{Key: "-", Output: "-", ShiftKey: "_", ShiftOutput: "।"},
			{Key: "=", Output: "ृ", ShiftKey: "+"},
		},
		{
			{Key: "q", Output: "ु", ShiftKey: "Q", ShiftOutput: "फ"},
			{Key: "w", Output: "ू", ShiftKey: "W", ShiftOutput: "ऊ"},
			{Key: "e", Output: "ा", ShiftKey: "E", ShiftOutput: "आ"},
			{Key: "r", Output: "त", ShiftKey: "R", ShiftOutput: "त्"},
			{Key: "t", Output: "ज", ShiftKey: "T", ShiftOutput: "ज्"},
			{Key: "y", Output: "ल", ShiftKey: "Y", ShiftOutput: "ल्"},
			{Key: "u", Output: "न", ShiftKey: "U", ShiftOutput: "न्"},
			{Key: "i", Output: "प", ShiftKey: "I", ShiftOutput: "प्"},
			{Key: "o", Output: "व", ShiftKey: "O", ShiftOutput: "व्"},
			{Key: "p", Output: "च", ShiftKey: "P", ShiftOutput: "च्"},
			{Key: "[", Output: "ख्", ShiftKey: "{", ShiftOutput: "क्ष्"},
			{Key: "]", Output: ",", ShiftKey: "}", ShiftOutput: "द्ध"},
			{Key: "\\", Output: "?", ShiftKey: "|"},
		},
		{
			{Key: "a", Output: "ं", ShiftKey: "A", ShiftOutput: "ँ"},
			{Key: "s", Output: "े", ShiftKey: "S", ShiftOutput: "ै"},
			{Key: "d", Output: "क", ShiftKey: "D", ShiftOutput: "क्"},
			{Key: "f", Output: "ि", ShiftKey: "F", ShiftOutput: "थ्"},
			{Key: "g", Output: "ह", ShiftKey: "G", ShiftOutput: "ळ"},
			{Key: "h", Output: "ी", ShiftKey: "H", ShiftOutput: "भ्"},
			{Key: "j", Output: "र", ShiftKey: "J", ShiftOutput: "श्र"},
			{Key: "k", Output: "ा", ShiftKey: "K", ShiftOutput: "ज्ञ"},
			{Key: "l", Output: "स", ShiftKey: "L", ShiftOutput: "स्"},
			{Key: ";", Output: "य", ShiftKey: ":", ShiftOutput: "रू"},
			{Key: "'", Output: "श्", ShiftKey: "\"", ShiftOutput: "ष्"},
		},
		{
			{Key: "z", Output: "्र", ShiftKey: "Z", ShiftOutput: "र्"},
			{Key: "x", Output: "ग", ShiftKey: "X", ShiftOutput: "ग्"},
			{Key: "c", Output: "ब", ShiftKey: "C", ShiftOutput: "ब्"},
			{Key: "v", Output: "अ", ShiftKey: "V", ShiftOutput: "ट"},
			{Key: "b", Output: "इ", ShiftKey: "B", ShiftOutput: "ठ"},
			{Key: "n", Output: "द", ShiftKey: "N", ShiftOutput: "छ"},
			{Key: "m", Output: "उ", ShiftKey: "M", ShiftOutput: "ड"},
			{Key: ",", Output: "ए", ShiftKey: "<", ShiftOutput: "ढ"},
			{Key: ".", Output: "ण्", ShiftKey: ">", ShiftOutput: "।"},
			{Key: "/", Output: "ध", ShiftKey: "?", ShiftOutput: "घ्"},
		},
	},
}
