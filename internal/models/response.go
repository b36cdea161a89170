package models

// Option field names, in the order they are reported.
const (
	OptionFilename  = "filename"
	OptionRoundTrip = "roundtrip"
	OptionAdults    = "adults"
	OptionChildren  = "childs"
	OptionInfants   = "infants"
)

var OptionFieldNames = []string{
	OptionFilename,
	OptionRoundTrip,
	OptionAdults,
	OptionChildren,
	OptionInfants,
}

type SearchOptions struct {
	Filename  string `json:"filename"`
	RoundTrip bool   `json:"roundtrip"`
	Adults    int    `json:"adults"`
	Children  int    `json:"childs"`
	Infants   int    `json:"infants"`
}

// Fields returns the options keyed by their JSON field names.
func (o SearchOptions) Fields() map[string]any {
	return map[string]any{
		OptionFilename:  o.Filename,
		OptionRoundTrip: o.RoundTrip,
		OptionAdults:    o.Adults,
		OptionChildren:  o.Children,
		OptionInfants:   o.Infants,
	}
}

type Response struct {
	Options  SearchOptions `json:"options"`
	Variants []Variant     `json:"variants"`
}

type BestVariants struct {
	Cheapest      Variant `json:"cheapest"`
	MostExpensive Variant `json:"most_expensive"`
	Fastest       Variant `json:"fastest"`
	Slowest       Variant `json:"slowest"`
	Optimal       Variant `json:"optimal"`
}

type OptionsDiff struct {
	Left  map[string]any `json:"left"`
	Right map[string]any `json:"right"`
}

// Empty reports whether both sides agree on every option.
func (d OptionsDiff) Empty() bool {
	return len(d.Left) == 0 && len(d.Right) == 0
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type ListMetadata struct {
	TotalVariants    int   `json:"total_variants"`
	ReturnedVariants int   `json:"returned_variants"`
	ElapsedMs        int64 `json:"elapsed_ms"`
}

type VariantsResponse struct {
	Options  SearchOptions `json:"options"`
	Metadata ListMetadata  `json:"metadata"`
	Variants []Variant     `json:"variants"`
}

type BestResponse struct {
	Options    SearchOptions `json:"options"`
	TimeWeight float64       `json:"time_weight"`
	CostWeight float64       `json:"cost_weight"`
	Best       BestVariants  `json:"best"`
}

type CompareResponse struct {
	Left  string      `json:"left"`
	Right string      `json:"right"`
	Diff  OptionsDiff `json:"diff"`
}

// CompareOptionsRequest carries two option sets as loose maps so that
// responses produced elsewhere can be compared without re-parsing.
type CompareOptionsRequest struct {
	Left  map[string]any `json:"left"`
	Right map[string]any `json:"right"`
}
