package http

// InterpretRequest is the JSON body accepted by POST /api/interpret.
type InterpretRequest struct {
	DreamText string            `json:"dream_text"`
	Answers   map[string]string `json:"answers,omitempty"`
	SunSign   string            `json:"sun_sign,omitempty"`
	DreamDate string            `json:"dream_date,omitempty"` // YYYY-MM-DD
}

// MoonResponse is the lunar context shape shared by /api/interpret and
// /api/moonphase.
type MoonResponse struct {
	PhaseName    string  `json:"phase_name"`
	Illumination float64 `json:"illumination"`
	Influence    string  `json:"influence"`
}

// InterpretResponse is the JSON shape returned by POST /api/interpret.
type InterpretResponse struct {
	Moon   MoonResponse      `json:"moon"`
	Agents map[string]string `json:"agents"`
	Meta   MetaResponse      `json:"meta"`
}

type MetaResponse struct {
	RequestID string `json:"request_id"`
	LatencyMS int64  `json:"latency_ms"`
}

// SymbolResponse is the JSON shape returned by GET /api/symbols.
type SymbolResponse struct {
	Term      string `json:"term"`
	Jungian   string `json:"jungian"`
	Vedic     string `json:"vedic"`
	Astrology string `json:"astrology"`
	Cultural  string `json:"cultural"`
}

// RitualRequest is the JSON body accepted by POST /api/ritual.
type RitualRequest struct {
	DreamText string `json:"dream_text"`
	DreamType string `json:"dream_type"` // nightmare, flying, prophetic, unknown
}

// RitualResponse is the JSON shape returned by POST /api/ritual.
type RitualResponse struct {
	Breath string `json:"breath"`
	Affirm string `json:"affirm"`
	Prompt string `json:"prompt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
