package docintel

// Method identifies the fallback tier that produced an extraction result.
type Method string

const (
	// MethodSDKClient is the structured JSON submission path.
	MethodSDKClient Method = "sdk_client"
	// MethodRESTV2 is the raw binary submission against the newest API version.
	MethodRESTV2 Method = "rest_v2"
	// MethodRESTV1 is the raw binary submission against the older GA API version.
	MethodRESTV1 Method = "rest_v1"
	// MethodLegacy is the last-resort Form Recognizer endpoint shape.
	MethodLegacy Method = "legacy"
)

// PageMetadata describes one analyzed page, kept for observability.
type PageMetadata struct {
	PageNumber int
	Width      float64
	Height     float64
	Unit       string
	LineCount  int
}

// ExtractionResult is the uniform output of every extraction tier.
type ExtractionResult struct {
	Text       string
	Method     Method
	APIVersion string
	Pages      []PageMetadata
}

// Operation statuses reported by the analysis service.
const (
	statusSucceeded  = "succeeded"
	statusFailed     = "failed"
	statusRunning    = "running"
	statusNotStarted = "notStarted"
)

// operationResponse is the versioned wire schema of the polling endpoint.
// Every field the gateway touches is declared here so no caller ever probes
// the payload ad hoc.
type operationResponse struct {
	Status        string         `json:"status"`
	Error         *serviceError  `json:"error"`
	AnalyzeResult *analyzeResult `json:"analyzeResult"`
}

type serviceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type analyzeResult struct {
	Content string        `json:"content"`
	Pages   []analyzePage `json:"pages"`
}

type analyzePage struct {
	PageNumber int     `json:"pageNumber"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Unit       string  `json:"unit"`
	Lines      []struct {
		Content string `json:"content"`
	} `json:"lines"`
}

// analyzeRequest is the JSON submission body used by the structured tier.
type analyzeRequest struct {
	Base64Source string `json:"base64Source"`
}

func (r *analyzeResult) pageMetadata() []PageMetadata {
	if len(r.Pages) == 0 {
		return nil
	}

	pages := make([]PageMetadata, 0, len(r.Pages))
	for _, page := range r.Pages {
		pages = append(pages, PageMetadata{
			PageNumber: page.PageNumber,
			Width:      page.Width,
			Height:     page.Height,
			Unit:       page.Unit,
			LineCount:  len(page.Lines),
		})
	}

	return pages
}
