package fonts

// Rule ties a set of search terms to the spreadsheet font family that should
// be written when any of them is found on disk. Search terms are tried in
// listed order; order encodes priority.
type Rule struct {
	SearchTerms []string
	Family      string
}

// FallbackFamily is returned when none of a rule's search terms matches the
// index. It is a family every host can render, so the output workbook never
// references a font it cannot prove exists.
const FallbackFamily = "Calibri"

// DefaultRules maps spreadsheet-safe language names to their font rules.
// The "Default" entry covers plain-Latin languages and unrecognized columns.
var DefaultRules = map[string]Rule{
	// Global default for standard Latin scripts.
	"Default": {
		SearchTerms: []string{"notosansliving", "notosans-regular", "arial", "helvetica", "calibri", "segoeui"},
		Family:      "Noto Sans",
	},

	// Western / European.
	"French":     {SearchTerms: []string{"notosans-regular", "arial"}, Family: "Noto Sans"},
	"Spanish":    {SearchTerms: []string{"notosans-regular", "arial"}, Family: "Noto Sans"},
	"German":     {SearchTerms: []string{"notosans-regular", "arial"}, Family: "Noto Sans"},
	"Italian":    {SearchTerms: []string{"notosans-regular", "arial"}, Family: "Noto Sans"},
	"Portuguese": {SearchTerms: []string{"notosans-regular", "arial"}, Family: "Noto Sans"},
	"Turkish":    {SearchTerms: []string{"notosans-regular", "arial"}, Family: "Noto Sans"},
	"Indonesian": {SearchTerms: []string{"notosansliving", "notosans-regular", "arial"}, Family: "Noto Sans"},

	// Extended Latin & Cyrillic.
	"Russian":    {SearchTerms: []string{"notosanscyrillic", "notosans-regular", "arial", "segoeui"}, Family: "Noto Sans"},
	"Vietnamese": {SearchTerms: []string{"notosansvietnamese", "notosans-regular", "arial", "segoeui"}, Family: "Noto Sans"},
	"Hausa":      {SearchTerms: []string{"notosans-regular", "arial"}, Family: "Noto Sans"},
	"Swahili":    {SearchTerms: []string{"notosans-regular", "arial"}, Family: "Noto Sans"},

	// East Asian (CJK); these need the large .ttc collections.
	"Mandarin_Chinese": {
		SearchTerms: []string{"notosanssc", "notosanscjksc", "simhei", "simkai", "arialuni", "dengxian", "notoserifcjk"},
		Family:      "Noto Sans SC",
	},
	"Wu_Chinese": {
		SearchTerms: []string{"notosanssc", "notosanscjksc", "simhei", "arialuni"},
		Family:      "Noto Sans SC",
	},
	"Yue_Chinese": {
		SearchTerms: []string{"notosanstc", "notosanscjktc", "microsoftjhenghei", "msjh", "mingliu", "pmingliu", "simhei"},
		Family:      "Noto Sans TC",
	},
	"Japanese": {
		SearchTerms: []string{"notosansjp", "notosanscjkjp", "msgothic", "meiryo", "arialuni"},
		Family:      "Noto Sans JP",
	},
	"Korean": {
		SearchTerms: []string{"notosanskr", "notosanscjkkr", "malgun", "gulim", "arialuni"},
		Family:      "Noto Sans KR",
	},

	// Middle Eastern (RTL).
	"Arabic":          {SearchTerms: []string{"notosansarabic", "arial", "tahoma", "segoeui"}, Family: "Noto Sans Arabic"},
	"Egyptian_Arabic": {SearchTerms: []string{"notosansarabic", "arial"}, Family: "Noto Sans Arabic"},
	"Iranian_Persian": {SearchTerms: []string{"notosansarabic", "arial"}, Family: "Noto Sans Arabic"},
	// Urdu prefers the cascading Nastaliq style, with Naskh as fallback.
	"Urdu": {SearchTerms: []string{"notonastaliqurdu", "notosansarabic", "arial", "tahoma"}, Family: "Noto Nastaliq Urdu"},

	// South Asian (Indic scripts).
	"Hindi":    {SearchTerms: []string{"notosansdevanagari", "mangal", "nirmala", "aparajita"}, Family: "Noto Sans Devanagari"},
	"Marathi":  {SearchTerms: []string{"notosansdevanagari", "mangal"}, Family: "Noto Sans Devanagari"},
	"Bengali":  {SearchTerms: []string{"notosansbengali", "vrinda"}, Family: "Noto Sans Bengali"},
	"Telugu":   {SearchTerms: []string{"notosanstelugu", "gautami"}, Family: "Noto Sans Telugu"},
	"Tamil":    {SearchTerms: []string{"notosanstamil", "latha"}, Family: "Noto Sans Tamil"},
	"Gujarati": {SearchTerms: []string{"notosansgujarati", "shruti"}, Family: "Noto Sans Gujarati"},
	// The provider returns Gurmukhi script for Western Punjabi.
	"Western_Punjabi": {SearchTerms: []string{"notosansarabic", "notosansgurmukhi", "raavi"}, Family: "Noto Sans Gurmukhi"},

	// Southeast Asian.
	"Thai":     {SearchTerms: []string{"notosansthai", "leelawadee", "tahoma"}, Family: "Noto Sans Thai"},
	"Javanese": {SearchTerms: []string{"notosansjavanese", "notosans-regular", "javatext"}, Family: "Noto Sans Javanese"},
}
