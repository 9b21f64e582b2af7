package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentsift/resume-analyzer/internal/models"
)

// fakeAnalyzer returns canned results and records what it was asked for.
type fakeAnalyzer struct {
	aspects        *models.SectionAspects
	result         *models.AnalysisResult
	lastJD         string
	lastResume     string
	receivedAspect *models.SectionAspects
}

func (f *fakeAnalyzer) GenerateAspects(_ context.Context, jobDescription string) *models.SectionAspects {
	f.lastJD = jobDescription
	return f.aspects
}

func (f *fakeAnalyzer) Analyze(_ context.Context, jobDescription, resume string, aspects *models.SectionAspects) *models.AnalysisResult {
	f.lastJD = jobDescription
	f.lastResume = resume
	f.receivedAspect = aspects
	return f.result
}

func newTestApp(analyzer *fakeAnalyzer) *fiber.App {
	app := fiber.New()
	handler := NewAnalysisHandler(analyzer)
	app.Post("/aspects", handler.HandleAspects)
	app.Post("/evaluate", handler.HandleEvaluate)
	app.Post("/analyze", handler.HandleAnalyze)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHandleAspects(t *testing.T) {
	analyzer := &fakeAnalyzer{aspects: &models.SectionAspects{
		Education: []models.Checkpoint{{ID: 1, Text: "Must have a degree in Data Science."}},
		MustHave:  []models.Checkpoint{{ID: 1, Text: "Must have a degree in Data Science."}},
	}}
	app := newTestApp(analyzer)

	resp := postJSON(t, app, "/aspects", models.AspectsRequest{
		JobDescription: "Data Scientist - Team Lead",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Data Scientist - Team Lead", analyzer.lastJD)

	var parsed models.AspectsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.Len(t, parsed.SectionAspects.Education, 1)
	assert.Equal(t, 1, parsed.SectionAspects.Education[0].ID)
}

func TestHandleAspectsMissingJobDescription(t *testing.T) {
	app := newTestApp(&fakeAnalyzer{})

	resp := postJSON(t, app, "/aspects", fiber.Map{})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyze(t *testing.T) {
	analyzer := &fakeAnalyzer{result: &models.AnalysisResult{
		ID:              "run-1",
		OverallRating:   models.OverallScore{Value: 72},
		OverallCategory: "Good Match",
	}}
	app := newTestApp(analyzer)

	resp := postJSON(t, app, "/analyze", models.AnalyzeRequest{
		JobDescription: "Data Scientist - Team Lead",
		Resume:         "John Doe holds an MSc in Data Science.",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "John Doe holds an MSc in Data Science.", analyzer.lastResume)
	// Ad-hoc mode never forwards pre-generated aspects.
	assert.Nil(t, analyzer.receivedAspect)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"overall_rating":72`)
	assert.Contains(t, string(body), `"overall_category":"Good Match"`)
}

func TestHandleAnalyzeMissingResume(t *testing.T) {
	app := newTestApp(&fakeAnalyzer{})

	resp := postJSON(t, app, "/analyze", fiber.Map{
		"job_description": "Data Scientist",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleEvaluateForwardsAspects(t *testing.T) {
	analyzer := &fakeAnalyzer{result: &models.AnalysisResult{ID: "run-2"}}
	app := newTestApp(analyzer)

	aspects := &models.SectionAspects{
		Skills: []models.Checkpoint{{ID: 1, Text: "Python proficiency."}},
	}

	resp := postJSON(t, app, "/evaluate", models.EvaluateRequest{
		JobDescription: "Data Scientist",
		Resume:         "John Doe",
		SectionAspects: aspects,
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, analyzer.receivedAspect)
	assert.Equal(t, aspects.Skills, analyzer.receivedAspect.Skills)
}

func TestHandleEvaluateMissingAspects(t *testing.T) {
	app := newTestApp(&fakeAnalyzer{})

	resp := postJSON(t, app, "/evaluate", fiber.Map{
		"job_description": "Data Scientist",
		"resume":          "John Doe",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeMalformedBody(t *testing.T) {
	app := newTestApp(&fakeAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
