package chords

// ScaleType identifies one of the reference scale shapes. The
// descending melodic minor is listed separately because its note set
// differs from the ascending form.
type ScaleType string

const (
	ScaleMajor                  = ScaleType("major")
	ScaleHarmonicMinor          = ScaleType("harmonicMinor")
	ScaleMelodicMinor           = ScaleType("melodicMinor")
	ScaleMelodicMinorDescending = ScaleType("melodicMinorDescending")
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var keyIndex = map[string]int{
	"C": 0, "C#/Db": 1, "D": 2, "D#/Eb": 3, "E": 4, "F": 5,
	"F#/Gb": 6, "G": 7, "G#/Ab": 8, "A": 9, "A#/Bb": 10, "B": 11,
}

var scaleFormulas = map[ScaleType][7]int{
	ScaleMajor:                  {0, 2, 4, 5, 7, 9, 11},
	ScaleHarmonicMinor:          {0, 2, 3, 5, 7, 8, 11},
	ScaleMelodicMinor:           {0, 2, 3, 5, 7, 9, 11},
	ScaleMelodicMinorDescending: {0, 2, 3, 5, 7, 8, 10},
}

// Chord qualities and roman numerals per scale degree. The descending
// melodic minor carries no diatonic chord set of its own.
var scaleQualities = map[ScaleType][7]string{
	ScaleMajor:         {"", "m", "m", "", "7", "m", "dim"},
	ScaleHarmonicMinor: {"m", "dim", "+", "m", "7", "", "dim"},
	ScaleMelodicMinor:  {"m", "m", "+", "", "7", "dim", "dim"},
}

var scaleNumerals = map[ScaleType][7]string{
	ScaleMajor:         {"I", "ii", "iii", "IV", "V7", "vi", "vii°"},
	ScaleHarmonicMinor: {"i", "ii°", "III+", "iv", "V7", "VI", "vii°"},
	ScaleMelodicMinor:  {"i", "ii", "III+", "IV", "V7", "vi°", "vii°"},
}

// ScaleChord is one diatonic chord of a scale.
type ScaleChord struct {
	Note    string `json:"note"`
	Chord   string `json:"chord"`
	Numeral string `json:"numeral"`
	Degree  int    `json:"degree"`
}

// Scale is the reference data for one key and scale type.
type Scale struct {
	Key    string       `json:"key"`
	Type   ScaleType    `json:"type"`
	Notes  []string     `json:"notes"`
	Chords []ScaleChord `json:"chords,omitempty"`
}

// Keys lists the twelve selectable root keys in display order.
func Keys() []string {
	return []string{
		"C", "C#/Db", "D", "D#/Eb", "E", "F",
		"F#/Gb", "G", "G#/Ab", "A", "A#/Bb", "B",
	}
}

// ScaleTypes lists the scale shapes served by the reference endpoint.
func ScaleTypes() []ScaleType {
	return []ScaleType{ScaleMajor, ScaleHarmonicMinor, ScaleMelodicMinor, ScaleMelodicMinorDescending}
}

// ScaleFor computes the scale for a key and type, or false for an
// unknown key.
func ScaleFor(key string, t ScaleType) (Scale, bool) {
	root, ok := keyIndex[key]
	if !ok {
		return Scale{}, false
	}
	formula, ok := scaleFormulas[t]
	if !ok {
		return Scale{}, false
	}

	s := Scale{Key: key, Type: t}
	for _, interval := range formula {
		s.Notes = append(s.Notes, noteNames[(root+interval)%12])
	}
	qualities, hasChords := scaleQualities[t]
	if hasChords {
		numerals := scaleNumerals[t]
		for i, interval := range formula {
			note := noteNames[(root+interval)%12]
			s.Chords = append(s.Chords, ScaleChord{
				Note:    note,
				Chord:   note + qualities[i],
				Numeral: numerals[i],
				Degree:  i + 1,
			})
		}
	}
	return s, true
}

// ScalesFor computes all scale shapes for a key, or false for an
// unknown key.
func ScalesFor(key string) ([]Scale, bool) {
	if _, ok := keyIndex[key]; !ok {
		return nil, false
	}
	var out []Scale
	for _, t := range ScaleTypes() {
		s, _ := ScaleFor(key, t)
		out = append(out, s)
	}
	return out, true
}
