package i18n

// Key names one localized string
type Key string

// Text keys shared by every surface
const (
	Title            Key = "title"
	HeroTitle        Key = "hero_title"
	HeroSubtitle     Key = "hero_subtitle"
	FormulaTitle     Key = "formula_title"
	Formula          Key = "formula"
	InputTitle       Key = "input_title"
	AutomationLabel  Key = "automation_label"
	ManualLabel      Key = "manual_label"
	RepetitionsLabel Key = "repetitions_label"
	ReadyToCalculate Key = "ready_to_calculate"
	FillInputs       Key = "fill_inputs"
	Share            Key = "share"
	Copied           Key = "copied"
	CopyFailed       Key = "copy_failed"
	WorthResult      Key = "worth_result"
	NotWorthResult   Key = "not_worth_result"
	TimeSaved        Key = "time_saved"
	TimeLost         Key = "time_lost"
	Hours            Key = "hours"
	Minutes          Key = "minutes"
	Efficiency       Key = "efficiency"
	FooterText       Key = "footer_text"
	ThemeToggle      Key = "theme_toggle"
	KeysHelp         Key = "keys_help"

	FieldRequired    Key = "field_required"
	FieldNotNumber   Key = "field_not_number"
	FieldNotPositive Key = "field_not_positive"
	FieldNotWhole    Key = "field_not_whole"
)

// pack is one language's strings; {0}-style params follow universal-translator
type pack map[Key]string

var english = pack{
	Title:            "is it worth automating",
	HeroTitle:        "is it worth automating this task?",
	HeroSubtitle:     "calculate if building automation will actually save you time in the long run",
	FormulaTitle:     "the math",
	Formula:          "automation time ≤ manual time × repetitions",
	InputTitle:       "your task",
	AutomationLabel:  "time to build automation (minutes)",
	ManualLabel:      "time per manual execution (minutes)",
	RepetitionsLabel: "how many times will you do this?",
	ReadyToCalculate: "ready to calculate",
	FillInputs:       "fill out the numbers to see if it's worth it",
	Share:            "share result",
	Copied:           "copied!",
	CopyFailed:       "copy the link below",
	WorthResult:      "worth it",
	NotWorthResult:   "not worth it",
	TimeSaved:        "time saved:",
	TimeLost:         "time wasted:",
	Hours:            "h",
	Minutes:          "min",
	Efficiency:       "efficiency: {0}%",
	FooterText:       "simple math for automation decisions",
	ThemeToggle:      "toggle theme",
	KeysHelp:         "enter next field · ctrl+s share · ctrl+t theme · esc quit",

	FieldRequired:    "Required field",
	FieldNotNumber:   "Must be a number",
	FieldNotPositive: "Must be greater than 0",
	FieldNotWhole:    "Must be a whole number",
}

var polish = pack{
	Title:            "is it worth automating",
	HeroTitle:        "czy warto to zautomatyzować?",
	HeroSubtitle:     "sprawdź czy napisanie automatyzacji rzeczywiście ci się opłaci",
	FormulaTitle:     "wzór",
	Formula:          "czas automatyzacji ≤ czas ręczny × powtórzenia",
	InputTitle:       "twoje zadanie",
	AutomationLabel:  "czas na napisanie automatyzacji (minuty)",
	ManualLabel:      "czas jednego ręcznego wykonania (minuty)",
	RepetitionsLabel: "ile razy będziesz to robić?",
	ReadyToCalculate: "gotowe do obliczenia",
	FillInputs:       "wpisz liczby żeby sprawdzić czy się opłaca",
	Share:            "udostępnij wynik",
	Copied:           "skopiowano!",
	CopyFailed:       "skopiuj link poniżej",
	WorthResult:      "opłaca się",
	NotWorthResult:   "nie opłaca się",
	TimeSaved:        "zaoszczędzisz:",
	TimeLost:         "stracisz:",
	Hours:            "h",
	Minutes:          "min",
	Efficiency:       "wydajność: {0}%",
	FooterText:       "prosta matematyka dla decyzji o automatyzacji",
	ThemeToggle:      "zmień motyw",
	KeysHelp:         "enter następne pole · ctrl+s udostępnij · ctrl+t motyw · esc wyjście",

	FieldRequired:    "Pole wymagane",
	FieldNotNumber:   "Musi być liczbą",
	FieldNotPositive: "Musi być większe od 0",
	FieldNotWhole:    "Musi być liczbą całkowitą",
}
