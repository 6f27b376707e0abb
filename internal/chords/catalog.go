package chords

// Fixed chord catalog, one fretting per chord within the first four
// frets. Frets are listed from the high E string down; -1 is a muted
// string, 0 an open one.
var catalog = []Chord{
	{ID: "C", Name: "C", Frets: [6]int{0, 1, 0, 2, 3, -1}, Level: LevelBeginner},
	{ID: "D", Name: "D", Frets: [6]int{2, 3, 2, 0, -1, -1}, Level: LevelBeginner},
	{ID: "E", Name: "E", Frets: [6]int{0, 0, 1, 2, 2, 0}, Level: LevelBeginner},
	{ID: "G", Name: "G", Frets: [6]int{3, 0, 0, 0, 2, 3}, Level: LevelBeginner},
	{ID: "A", Name: "A", Frets: [6]int{0, 2, 2, 2, 0, -1}, Level: LevelBeginner},
	{ID: "Em", Name: "Em", Frets: [6]int{0, 0, 0, 2, 2, 0}, Level: LevelBeginner},
	{ID: "Am", Name: "Am", Frets: [6]int{0, 1, 2, 2, 0, -1}, Level: LevelBeginner},
	{ID: "Dm", Name: "Dm", Frets: [6]int{1, 3, 2, 0, -1, -1}, Level: LevelBeginner},
	{ID: "F", Name: "F", Frets: [6]int{1, 1, 2, 3, 3, 1}, Level: LevelIntermediate},
	{ID: "B", Name: "B", Frets: [6]int{2, 4, 4, 4, 2, -1}, Level: LevelIntermediate},
	{ID: "Cm", Name: "Cm", Frets: [6]int{4, 1, 0, 1, 3, -1}, Level: LevelIntermediate},
	{ID: "Fm", Name: "Fm", Frets: [6]int{1, 1, 1, 3, 3, 1}, Level: LevelIntermediate},
	{ID: "Gm", Name: "Gm", Frets: [6]int{2, 2, 2, 4, 4, 2}, Level: LevelIntermediate},
	{ID: "Bm", Name: "Bm", Frets: [6]int{2, 3, 4, 4, 2, -1}, Level: LevelIntermediate},
	{ID: "C7", Name: "C7", Frets: [6]int{0, 1, 3, 2, 3, -1}, Level: LevelIntermediate},
	{ID: "D7", Name: "D7", Frets: [6]int{2, 1, 2, 0, -1, -1}, Level: LevelIntermediate},
	{ID: "E7", Name: "E7", Frets: [6]int{0, 0, 1, 0, 2, 0}, Level: LevelIntermediate},
	{ID: "G7", Name: "G7", Frets: [6]int{1, 0, 0, 0, 2, 3}, Level: LevelIntermediate},
	{ID: "A7", Name: "A7", Frets: [6]int{0, 2, 0, 2, 0, -1}, Level: LevelIntermediate},
	{ID: "B7", Name: "B7", Frets: [6]int{2, 1, 2, 0, 2, -1}, Level: LevelIntermediate},
	{ID: "Cm7", Name: "Cm7", Frets: [6]int{-1, 1, 3, 1, 3, -1}, Level: LevelAdvanced},
	{ID: "Dm7", Name: "Dm7", Frets: [6]int{1, 1, 2, 0, -1, -1}, Level: LevelAdvanced},
	{ID: "Em7", Name: "Em7", Frets: [6]int{0, 0, 0, 0, 2, 0}, Level: LevelAdvanced},
	{ID: "Fm7", Name: "Fm7", Frets: [6]int{1, 1, 1, 1, 3, 1}, Level: LevelAdvanced},
	{ID: "Gm7", Name: "Gm7", Frets: [6]int{2, 2, 2, 2, 4, 2}, Level: LevelAdvanced},
	{ID: "Am7", Name: "Am7", Frets: [6]int{0, 1, 0, 2, 0, -1}, Level: LevelAdvanced},
	{ID: "Bm7", Name: "Bm7", Frets: [6]int{2, 0, 2, 0, 2, -1}, Level: LevelAdvanced},
	{ID: "Cmaj7", Name: "Cmaj7", Frets: [6]int{0, 0, 0, 2, 3, -1}, Level: LevelAdvanced},
	{ID: "Dmaj7", Name: "Dmaj7", Frets: [6]int{2, 2, 2, 0, -1, -1}, Level: LevelAdvanced},
	{ID: "Emaj7", Name: "Emaj7", Frets: [6]int{0, 0, 1, 1, 2, 0}, Level: LevelAdvanced},
	{ID: "Fmaj7", Name: "Fmaj7", Frets: [6]int{0, 1, 2, 3, -1, -1}, Level: LevelAdvanced},
	{ID: "Gmaj7", Name: "Gmaj7", Frets: [6]int{2, 0, 0, 0, 2, 3}, Level: LevelAdvanced},
	{ID: "Amaj7", Name: "Amaj7", Frets: [6]int{0, 2, 1, 2, 0, -1}, Level: LevelAdvanced},
	{ID: "Bmaj7", Name: "Bmaj7", Frets: [6]int{2, 0, 3, 1, -1, -1}, Level: LevelAdvanced},
	{ID: "Csus2", Name: "Csus2", Frets: [6]int{0, 1, 0, 0, 3, -1}, Level: LevelAdvanced},
	{ID: "Csus4", Name: "Csus4", Frets: [6]int{0, 1, 1, 3, 3, -1}, Level: LevelAdvanced},
	{ID: "Dsus2", Name: "Dsus2", Frets: [6]int{0, 3, 2, 0, -1, -1}, Level: LevelAdvanced},
	{ID: "Dsus4", Name: "Dsus4", Frets: [6]int{3, 3, 2, 0, -1, -1}, Level: LevelAdvanced},
	{ID: "Esus2", Name: "Esus2", Frets: [6]int{0, 0, 2, 2, 0, 0}, Level: LevelAdvanced},
	{ID: "Esus4", Name: "Esus4", Frets: [6]int{0, 0, 2, 2, 0, 0}, Level: LevelAdvanced},
	{ID: "Asus2", Name: "Asus2", Frets: [6]int{0, 0, 2, 2, 0, -1}, Level: LevelAdvanced},
	{ID: "Asus4", Name: "Asus4", Frets: [6]int{0, 3, 2, 2, 0, -1}, Level: LevelAdvanced},
	{ID: "Cdim", Name: "Cdim", Frets: [6]int{-1, 1, 2, 0, 2, -1}, Level: LevelAdvanced},
	{ID: "Ddim", Name: "Ddim", Frets: [6]int{-1, -1, 0, 1, 0, 1}, Level: LevelAdvanced},
	{ID: "Edim", Name: "Edim", Frets: [6]int{-1, 1, 2, 0, 2, 0}, Level: LevelAdvanced},
	{ID: "Gdim", Name: "Gdim", Frets: [6]int{-1, 1, 2, 0, 2, 0}, Level: LevelAdvanced},
	{ID: "Adim", Name: "Adim", Frets: [6]int{-1, 0, 1, 2, 1, -1}, Level: LevelAdvanced},
	{ID: "Bdim", Name: "Bdim", Frets: [6]int{-1, 2, 0, 1, 0, -1}, Level: LevelAdvanced},
	{ID: "Cadd9", Name: "Cadd9", Frets: [6]int{0, 3, 0, 2, 3, -1}, Level: LevelAdvanced},
	{ID: "Dadd9", Name: "Dadd9", Frets: [6]int{0, 3, 2, 0, -1, -1}, Level: LevelAdvanced},
	{ID: "Gadd9", Name: "Gadd9", Frets: [6]int{3, 0, 0, 2, 0, 3}, Level: LevelAdvanced},
	{ID: "Aadd9", Name: "Aadd9", Frets: [6]int{0, 0, 2, 2, 0, -1}, Level: LevelAdvanced},
	{ID: "C6", Name: "C6", Frets: [6]int{0, 1, 2, 2, 3, -1}, Level: LevelAdvanced},
	{ID: "D6", Name: "D6", Frets: [6]int{2, 0, 2, 0, -1, -1}, Level: LevelAdvanced},
	{ID: "G6", Name: "G6", Frets: [6]int{3, 0, 0, 0, 0, 3}, Level: LevelAdvanced},
	{ID: "A6", Name: "A6", Frets: [6]int{0, 0, 2, 2, 2, -1}, Level: LevelAdvanced},
}
