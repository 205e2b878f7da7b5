package scraper

import (
	"errors"
	"fmt"
	"testing"

	"go-career-watch/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTarget = config.Target{
	URL:           "https://careers.example.com/teams/data?country=US",
	Name:          "Example Data Jobs",
	CountSelector: "span[data-testid='job-count']",
}

func TestExtractPrimarySelector(t *testing.T) {
	html := `<html><body>
		<span data-testid="job-count">1,542 jobs found</span>
		<ul>
			<li><h3><a href="/jobs/101">Senior Data Engineer</a></h3></li>
			<li><h3><a href="/jobs/102">Business Intelligence Engineer</a></h3></li>
		</ul>
	</body></html>`

	snap, err := Extract(html, testTarget)
	require.NoError(t, err)

	assert.Equal(t, 1542, snap.TotalCount)
	require.Len(t, snap.TopJobs, 2)
	assert.Equal(t, "https://careers.example.com/jobs/101", snap.TopJobs[0].ID)
	assert.Equal(t, "Senior Data Engineer", snap.TopJobs[0].Title)
	assert.Equal(t, "https://careers.example.com/jobs/101", snap.TopJobs[0].Link)
}

func TestExtractFallbackSelector(t *testing.T) {
	//primary selector absent, semantic fallback carries the count
	html := `<html><body>
		<div data-testid="result-count">87 results</div>
	</body></html>`

	snap, err := Extract(html, testTarget)
	require.NoError(t, err)
	assert.Equal(t, 87, snap.TotalCount)
	assert.Empty(t, snap.TopJobs)
}

func TestExtractTextScanFallback(t *testing.T) {
	html := `<html><body>
		<h1>Careers</h1>
		<p>We currently have 23 open positions.</p>
	</body></html>`

	snap, err := Extract(html, testTarget)
	require.NoError(t, err)
	assert.Equal(t, 23, snap.TotalCount)
}

func TestExtractMissingCount(t *testing.T) {
	html := `<html><body><h1>Welcome to our careers page</h1></body></html>`

	_, err := Extract(html, testTarget)
	require.Error(t, err)

	var extractErr *ExtractionError
	assert.True(t, errors.As(err, &extractErr), "want ExtractionError, got %T", err)
}

func TestExtractCapsTopJobs(t *testing.T) {
	html := `<span data-testid="job-count">40 jobs</span><ul>`
	for i := 0; i < 8; i++ {
		html += fmt.Sprintf(`<li><h3><a href="/jobs/%d">Data Engineer Role %d</a></h3></li>`, i, i)
	}
	html += `</ul>`

	snap, err := Extract(html, testTarget)
	require.NoError(t, err)
	assert.Len(t, snap.TopJobs, MaxTopJobs)
}

func TestExtractUniqueIDs(t *testing.T) {
	//same posting rendered twice must appear once
	html := `<span data-testid="job-count">5 jobs</span>
		<h3><a href="/jobs/1">Data Engineer</a></h3>
		<h3><a href="/jobs/1">Data Engineer</a></h3>
		<h3><a href="/jobs/2">Data Scientist</a></h3>`

	snap, err := Extract(html, testTarget)
	require.NoError(t, err)
	require.Len(t, snap.TopJobs, 2)
	assert.NotEqual(t, snap.TopJobs[0].ID, snap.TopJobs[1].ID)
}

func TestExtractSkipsChromeText(t *testing.T) {
	html := `<span data-testid="job-count">12 jobs</span>
		<h3><a href="/search">Search all openings</a></h3>
		<h3><a href="/jobs/9">Analytics Engineer</a></h3>`

	snap, err := Extract(html, testTarget)
	require.NoError(t, err)
	require.Len(t, snap.TopJobs, 1)
	assert.Equal(t, "Analytics Engineer", snap.TopJobs[0].Title)
}

func TestExtractLinklessPostingGetsSlugID(t *testing.T) {
	html := `<span data-testid="job-count">3 jobs</span>
		<div class="job-title"><a>Ingénieur Données Senior</a></div>`

	snap, err := Extract(html, testTarget)
	require.NoError(t, err)
	require.Len(t, snap.TopJobs, 1)
	assert.Equal(t, "ingenieur-donnees-senior", snap.TopJobs[0].ID)
	assert.Empty(t, snap.TopJobs[0].Link)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Senior Go Developer", "senior-go-developer"},
		{"  Data  Engineer II ", "data-engineer-ii"},
		{"Ingénieur Été", "ingenieur-ete"},
		{"C++ / Go (Backend)", "c-go-backend"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.in), "slugify(%q)", tt.in)
	}
}
