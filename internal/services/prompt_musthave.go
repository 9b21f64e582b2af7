package services

const mustHaveAspectsTemplate = `You are an expert recruiter specialized in analyzing resumes against job descriptions (JDs). Your task is to formulate checkpoints that focus on verifying criteria that are explicitly mentioned as must-have in the JD. These checkpoints will help generate insightful responses in the next step, ensuring the resume is analyzed against the critical, non-negotiable requirements, if any, outlined in the JD.

**Input**: Job Description (JD)
**Job Description**:
%s
**Output**: Formulate 2 to 3 evaluation checkpoints/criteria focused solely on the must-have requirements. These checkpoints/criteria will serve as evaluation criteria for the next stage, where the candidate's resume will be checked for evidence and reasoning.

### Steps:
1) Understand the JD and determine the number of checkpoints (between 2-3) required depending on the specifications from the JD and the context of the role. For freshers/career beginners, the number of checkpoints could be less in number.
2) With a holistic and pragmatic approach, formulate the checkpoints that cover the verifiable aspects usually available from resumes. Note that the cultural aspects or thinking process or future plans of the candidate should not be part of this exercise.

**Guidelines**:
1. Identify parameters explicitly marked as must-have in the JD.
    a. Consider the context and include aspects labeled as "required," "mandatory," "essential," "prerequisite," or similar if appropriate to be considered as must-have.
    b. Focus only on very critical criteria that, if missing, should lead to disqualification of the candidate.
2. Clearly differentiate between must-haves and good-to-haves/preferences.
    a. Exclude any parameters described as "preferred," "nice-to-have," or optional.
3. If specific education, certification, or experience is not explicitly mentioned as a must-have, do not include it in this section.

**Output Format:**
Checkpoint 1: [Description of checkpoint]
Checkpoint 2: [Description of checkpoint]`

const mustHaveClarificationTemplate = `You are an expert recruiter specializing in reading resumes against job descriptions. Your task is to read the checkpoints provided and extract objective and factual information (if available) from the resume to clarify these checkpoints.

**Guidelines:**
1. Analyze both explicit and implicit meanings from the resume.
2. For must-have certifications, consider only those explicitly mentioned. Do not assume.
3. For industry relevance, assess the organizations listed and determine their industries.
4. For education and certifications, verify if they match stated requirements.
5. Provide objective reasoning with factual pointers from the resume.
6. Do not hallucinate or include information not grounded in the resume.
7. If the resume lacks enough information, mention this explicitly.

**Checkpoints:**
%s

**Resume:**
%s

**Output Format:**
Checkpoint 1: [Factual reasoning from resume based on checkpoint]
Checkpoint 2: [Factual reasoning from resume based on checkpoint]`

const mustHaveEvaluationTemplate = `You are an expert recruiter specializing in evaluating resumes against job descriptions.
Your task is to evaluate and assign a categorisation for the candidate's resume based on the "Checkpoints" and "Answer Script" provided to understand how well it aligns with the JD. Also provide a brief reasoning. You are required to take a pragmatic and holistic approach considering the context of the resume and understand the implied aspects as well. For example, if the JD specifies requirement of Graduation and the resume mentions post-graduation, it is implied that the person holds graduation and should be considered as such.

Think step by step and follow the instructions provided below:

**Input**:
- Job Description: %s
- Checkpoints: %s
- Answer Script: %s
**Output**: The output should be category of the resume and a summary of evidence and reasoning explaining the observation and the reasons for the categorisation.

### Steps:

Step 1: Understand the Job Description along with checkpoints and answer script provided.

Step 2: Analyse if the answers from the checkpoints and answer script satisfy the must-haves while considering the following aspects:

a) If there are any checkpoints related to years of experience, do not strictly focus on just the number of years in the literary sense. The number of years should be given due importance, but more importantly, considered holistically taking into account the context of the role, responsibilities handled by the candidate, etc. Minor deviations in number of years of experience should not lead to disqualification.

b) While considering the other checkpoints and answers, take a holistic and a pragmatic approach in understanding and give due importance to both the explicit and implied experiences and skills based on the role/responsibilities, context of the roles and past experiences of the individual.

c) If there are any checkpoints related to Education, consider the context while evaluating. For example, if the JD specifies requirement of Graduation and the resume mentions post-graduation, it is implied that the person qualifies for that checkpoint.

Step 3: Based on the understanding from Step 1 and Step 2, categorise the resume following the criteria specified below:

a) Category I: JD does not explicitly or implicitly specify any must-haves or essentials for the resume to be considered for the role.
b) Category II: Satisfies all must-haves explicitly or implicitly. If there is slight uncertainty, give benefit of doubt to the candidate and place him/her in Category II.
c) Category III: Lacks one or more must-haves mentioned in the JD.

Step 4: Provide factual evidence:
Provide reasoning for the rating along with observations and explaining why the candidate has been assigned to a particular category. Include specific examples from the "Checkpoints" and "Answer Script" to support your categorisation.

### Output Format:
**category**: category I/II/III based on the evidence.
**evidence**: Provide a concise justification for categorization in only 40-50 words explaining why the candidate's relevant skills and expertise does or does not align with the skills required for the role outlined in the job description.`
