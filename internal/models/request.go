package models

type AspectsRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
}

type AspectsResponse struct {
	SectionAspects SectionAspects `json:"section_aspects"`
}

type EvaluateRequest struct {
	JobDescription string          `json:"job_description" validate:"required"`
	Resume         string          `json:"resume" validate:"required"`
	SectionAspects *SectionAspects `json:"section_aspects" validate:"required"`
}

type AnalyzeRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
	Resume         string `json:"resume" validate:"required"`
}
