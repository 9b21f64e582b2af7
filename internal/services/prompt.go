package services

import (
	"fmt"

	"github.com/talentsift/resume-analyzer/internal/models"
)

// PromptBuilder renders the rubric-specific instruction templates. The
// template bodies are data: they define the scoring contract (rating bands,
// category rules) and must not be reworded casually.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildAspectsPrompt creates the checkpoint-generation prompt for a rubric.
func (pb *PromptBuilder) BuildAspectsPrompt(rubric models.Rubric, jobDescription string) string {
	switch rubric {
	case models.RubricEducation:
		return fmt.Sprintf(educationAspectsTemplate, jobDescription)
	case models.RubricExperience:
		return fmt.Sprintf(experienceAspectsTemplate, jobDescription)
	case models.RubricSkills:
		return fmt.Sprintf(skillsAspectsTemplate, jobDescription)
	case models.RubricMustHave:
		return fmt.Sprintf(mustHaveAspectsTemplate, jobDescription)
	}
	return ""
}

// BuildClarificationPrompt creates the resume-grounded clarification prompt
// for a rubric.
func (pb *PromptBuilder) BuildClarificationPrompt(rubric models.Rubric, checkpoints, resume string) string {
	switch rubric {
	case models.RubricEducation:
		return fmt.Sprintf(educationClarificationTemplate, checkpoints, resume)
	case models.RubricExperience:
		return fmt.Sprintf(experienceClarificationTemplate, checkpoints, resume)
	case models.RubricSkills:
		return fmt.Sprintf(skillsClarificationTemplate, checkpoints, resume)
	case models.RubricMustHave:
		return fmt.Sprintf(mustHaveClarificationTemplate, checkpoints, resume)
	}
	return ""
}

// BuildEvaluationPrompt creates the rating/banding prompt for a rubric.
func (pb *PromptBuilder) BuildEvaluationPrompt(rubric models.Rubric, jobDescription, checkpoints, answerScript string) string {
	switch rubric {
	case models.RubricEducation:
		return fmt.Sprintf(educationEvaluationTemplate, jobDescription, checkpoints, answerScript)
	case models.RubricExperience:
		return fmt.Sprintf(experienceEvaluationTemplate, jobDescription, checkpoints, answerScript)
	case models.RubricSkills:
		return fmt.Sprintf(skillsEvaluationTemplate, jobDescription, checkpoints, answerScript)
	case models.RubricMustHave:
		return fmt.Sprintf(mustHaveEvaluationTemplate, jobDescription, checkpoints, answerScript)
	}
	return ""
}

// BuildSectionWeightsPrompt creates the weight-calibration prompt used once
// per job description.
func (pb *PromptBuilder) BuildSectionWeightsPrompt(jobDescription string) string {
	return fmt.Sprintf(sectionWeightsTemplate, jobDescription)
}

// BuildSummaryPrompt creates the executive-summary prompt from the three
// section rationales.
func (pb *PromptBuilder) BuildSummaryPrompt(experienceRationale, skillsRationale, educationRationale string) string {
	return fmt.Sprintf(summaryTemplate, experienceRationale, skillsRationale, educationRationale)
}

const sectionWeightsTemplate = `You are an expert recruiter specializing in resume evaluation and scoring based on job descriptions (JDs). Your task is to determine the relative weights for three key sections - Experience, Skills, and Education/Certifications - based on the JD. These weights will be used to calibrate the overall candidate rating.

### Input: The input for this task will be a job description (JD).
**Job Description**:
%s

### Output: Your output should be a set of three numerical weights (expressed as percentages summing to 100%%) representing the importance of Experience, Skills, and Education/Certifications for evaluating candidates.

### Guidelines for Weight Distribution:
1) Experience Weight (X%%)
Assign higher weight (e.g., 50-70%%) if the JD emphasizes past work experience, industry expertise, or specific job responsibilities.
Assign lower weight (e.g., 30-50%%) if the JD is open to freshers or prioritizes skills over prior experience.

2) Skills Weight (Y%%)
Assign higher weight (e.g., 30-50%%) if the JD requires strong technical or specialized skills (e.g., programming languages, software tools, methodologies).
Assign lower weight (e.g., 20-40%%) if experience in a domain is more critical than specific skill sets.

3) Education/Certification Weight (Z%%)
Assign higher weight (e.g., 20-40%%) if the JD explicitly requires degrees, certifications, or licenses (e.g., CPA, PMP, AWS Certified).
Assign lower weight (e.g., 10-20%%) if practical experience and skills are emphasized over formal education.

### Special Considerations:
1) Ensure the three weights sum up to 100%%.
2) If the JD is senior-level or leadership-focused, prioritize Experience more heavily.
3) If the JD is for highly technical roles, increase Skills weight.
4) If the JD mandates specific degrees or certifications, adjust the Education/Certification weight accordingly.
5) Consider industry norms (e.g., IT roles may prioritize skills, while medical/legal roles may require strong educational backgrounds).

Return your response as a JSON object with exactly this structure:
{
  "experience": {"weight": <integer percentage>, "reasoning": "<50-60 word factual reasoning for the weightage assigned>"},
  "skills": {"weight": <integer percentage>, "reasoning": "<50-60 word factual reasoning for the weightage assigned>"},
  "education_certification": {"weight": <integer percentage>, "reasoning": "<50-60 word factual reasoning for the weightage assigned>"}
}

Return ONLY the JSON object, no surrounding prose.`

const summaryTemplate = `You are an expert recruiter tasked with creating a concise executive summary of a candidate's evaluation.

Here's the evaluation data for different sections:

**Experience:** %s
**Skills:** %s
**Education and Certification:** %s

Your goal is to synthesize this evidence into a brief, informative summary. Focus on providing a balanced assessment that highlights key strengths and areas of concern, while giving a clear indication of the candidate's overall fit for the position.

Provide a 2-3 line summary highlighting the candidate's strengths and weaknesses based on the evidence.`
