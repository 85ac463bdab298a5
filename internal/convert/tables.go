package convert

// ScoreRange maps the inclusive band [Min, Max] of a raw scale onto one
// TOEFL-IBT value.
type ScoreRange struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	TOEFL int     `json:"toefl"`
}

// Mid is the centre of the band.
func (r ScoreRange) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// IeltsAnchor pins one IELTS half-band to a TOEFL-IBT value.
type IeltsAnchor struct {
	IELTS float64 `json:"ielts"`
	TOEFL int     `json:"toefl"`
}

// toeicToTOEFL is the institutional TOEIC chart, highest band first. Bands
// are contiguous over the integer scores 0..990.
var toeicToTOEFL = [...]ScoreRange{
	{Min: 965, Max: 990, TOEFL: 118},
	{Min: 940, Max: 964, TOEFL: 115},
	{Min: 915, Max: 939, TOEFL: 111},
	{Min: 890, Max: 914, TOEFL: 107},
	{Min: 865, Max: 889, TOEFL: 103},
	{Min: 840, Max: 864, TOEFL: 99},
	{Min: 815, Max: 839, TOEFL: 95},
	{Min: 790, Max: 814, TOEFL: 91},
	{Min: 765, Max: 789, TOEFL: 87},
	{Min: 740, Max: 764, TOEFL: 83},
	{Min: 715, Max: 739, TOEFL: 80},
	{Min: 690, Max: 714, TOEFL: 78},
	{Min: 665, Max: 689, TOEFL: 76},
	{Min: 640, Max: 664, TOEFL: 74},
	{Min: 615, Max: 639, TOEFL: 72},
	{Min: 590, Max: 614, TOEFL: 70},
	{Min: 565, Max: 589, TOEFL: 68},
	{Min: 540, Max: 564, TOEFL: 66},
	{Min: 515, Max: 539, TOEFL: 64},
	{Min: 490, Max: 514, TOEFL: 62},
	{Min: 465, Max: 489, TOEFL: 61},
	{Min: 440, Max: 464, TOEFL: 60},
	{Min: 415, Max: 439, TOEFL: 58},
	{Min: 390, Max: 414, TOEFL: 57},
	{Min: 365, Max: 389, TOEFL: 56},
	{Min: 340, Max: 364, TOEFL: 55},
	{Min: 315, Max: 339, TOEFL: 53},
	{Min: 290, Max: 314, TOEFL: 52},
	{Min: 265, Max: 289, TOEFL: 51},
	{Min: 240, Max: 264, TOEFL: 50},
	{Min: 215, Max: 239, TOEFL: 49},
	{Min: 190, Max: 214, TOEFL: 48},
	{Min: 165, Max: 189, TOEFL: 47},
	{Min: 140, Max: 164, TOEFL: 46},
	{Min: 115, Max: 139, TOEFL: 45},
	{Min: 90, Max: 114, TOEFL: 44},
	{Min: 65, Max: 89, TOEFL: 43},
	{Min: 40, Max: 64, TOEFL: 42},
	{Min: 0, Max: 39, TOEFL: 40},
}

// ieltsToTOEFL holds the half-band anchors from 9.0 down to 4.0.
var ieltsToTOEFL = [...]IeltsAnchor{
	{IELTS: 9.0, TOEFL: 118},
	{IELTS: 8.5, TOEFL: 113},
	{IELTS: 8.0, TOEFL: 108},
	{IELTS: 7.5, TOEFL: 95},
	{IELTS: 7.0, TOEFL: 85},
	{IELTS: 6.5, TOEFL: 85},
	{IELTS: 6.0, TOEFL: 72},
	{IELTS: 5.5, TOEFL: 60},
	{IELTS: 5.0, TOEFL: 52},
	{IELTS: 4.5, TOEFL: 48},
	{IELTS: 4.0, TOEFL: 44},
}

// TOEICToTOEFL returns a copy of the TOEIC chart, highest band first.
func TOEICToTOEFL() []ScoreRange {
	out := make([]ScoreRange, len(toeicToTOEFL))
	copy(out, toeicToTOEFL[:])
	return out
}

// IELTSToTOEFL returns a copy of the IELTS anchors, highest first.
func IELTSToTOEFL() []IeltsAnchor {
	out := make([]IeltsAnchor, len(ieltsToTOEFL))
	copy(out, ieltsToTOEFL[:])
	return out
}
