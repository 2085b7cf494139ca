package model

// Extraction is the outcome of running a document through text detection.
type Extraction struct {
	Text     string `json:"extracted_text"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
}

type KeyTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Simplification always carries all three fields, even when the model
// output could not be parsed and the text degraded to a fallback.
type Simplification struct {
	SimplifiedText string    `json:"simplified_text"`
	KeyTerms       []KeyTerm `json:"key_terms"`
	StepByStep     []string  `json:"step_by_step"`
}

type Visual struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageBase64 string `json:"image_base64"`
}

type Narration struct {
	AudioBase64 string `json:"audio_base64"`
}

type QAExchange struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
