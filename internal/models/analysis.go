package models

import "encoding/json"

type Rubric string

const (
	RubricEducation  Rubric = "education"
	RubricExperience Rubric = "experience"
	RubricSkills     Rubric = "skills"
	RubricMustHave   Rubric = "must_have"
)

// Checkpoint is one atomic evaluation criterion derived from a job
// description for a given rubric. Checkpoints are correlated across pipeline
// stages by ID, never by text position.
type Checkpoint struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Clarification is a factual statement extracted from a resume addressing
// the checkpoint with the matching ID.
type Clarification struct {
	CheckpointID int    `json:"checkpoint_id"`
	Text         string `json:"text"`
}

type MustHaveCategory string

const (
	// CategoryNone means the evaluation text named no category at all.
	CategoryNone MustHaveCategory = ""
	// CategoryI means the job description has no must-have requirements.
	CategoryI MustHaveCategory = "I"
	// CategoryII means all must-haves are satisfied (benefit of the doubt).
	CategoryII MustHaveCategory = "II"
	// CategoryIII means at least one must-have is unmet.
	CategoryIII MustHaveCategory = "III"
)

// RatingOutcome distinguishes a genuinely extracted rating from evaluation
// text that carried no parseable "Rating:" marker. Value is 0 whenever
// Parsed is false; aggregation consumes Value as-is.
type RatingOutcome struct {
	Value  int    `json:"value"`
	Parsed bool   `json:"parsed"`
	Raw    string `json:"-"`
}

// SectionResult is the output of one rubric pipeline. Rating is meaningful
// for the education/experience/skills rubrics, Category for must-have.
// Error is set when a stage degraded; the remaining fields still carry
// whatever the pipeline managed to produce.
type SectionResult struct {
	Rubric         Rubric           `json:"rubric"`
	Checkpoints    []Checkpoint     `json:"checkpoints"`
	Clarifications []Clarification  `json:"clarifications"`
	Rating         RatingOutcome    `json:"rating"`
	Category       MustHaveCategory `json:"category,omitempty"`
	Evidence       string           `json:"evidence"`
	Evaluation     string           `json:"evaluation"`
	Error          string           `json:"error,omitempty"`
}

// SectionWeights holds the per-section percentages used to combine ratings.
// The producer intends them to sum to 100 but the aggregator renormalizes
// before use.
type SectionWeights struct {
	Experience                float64 `json:"experience"`
	Skills                    float64 `json:"skills"`
	EducationAndCertification float64 `json:"education_and_certification"`
}

type WeightReasoning struct {
	Experience                string `json:"experience"`
	Skills                    string `json:"skills"`
	EducationAndCertification string `json:"education_and_certification"`
}

// OverallScore is an integer rating or "NA" when all three numeric sections
// produced zero (insufficient data, not a score of zero).
type OverallScore struct {
	Value int
	NA    bool
}

func (s OverallScore) MarshalJSON() ([]byte, error) {
	if s.NA {
		return json.Marshal("NA")
	}
	return json.Marshal(s.Value)
}

func (s *OverallScore) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		s.NA = str == "NA"
		s.Value = 0
		return nil
	}
	s.NA = false
	return json.Unmarshal(data, &s.Value)
}

// SectionAspects carries the checkpoint sets for all four rubrics, generated
// once per job description and shareable across many resumes.
type SectionAspects struct {
	Education  []Checkpoint `json:"education"`
	Experience []Checkpoint `json:"experience"`
	Skills     []Checkpoint `json:"skills"`
	MustHave   []Checkpoint `json:"must_have"`
}

// AnalysisResult is the assembled outcome of one analysis run.
type AnalysisResult struct {
	ID              string          `json:"id"`
	OverallRating   OverallScore    `json:"overall_rating"`
	OverallCategory string          `json:"overall_category"`
	SectionWeights  SectionWeights  `json:"section_weights"`
	WeightReasoning WeightReasoning `json:"weight_reasoning"`
	OverallSummary  string          `json:"overall_summary"`
	SummaryError    string          `json:"summary_error,omitempty"`
	Education       *SectionResult  `json:"education_analysis"`
	Experience      *SectionResult  `json:"experience_analysis"`
	Skills          *SectionResult  `json:"skills_analysis"`
	MustHave        *SectionResult  `json:"must_have_analysis"`
}
