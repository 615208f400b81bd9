package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeed = `[
  {
    "id": 1,
    "company": "Acme",
    "logo": "https://example.com/acme.svg",
    "new": true,
    "featured": false,
    "position": "Frontend Developer",
    "role": "Frontend",
    "level": "Senior",
    "postedAt": "1d ago",
    "contract": "Full Time",
    "location": "Remote",
    "skills": ["JavaScript", "CSS"]
  },
  {
    "id": 2,
    "company": "Globex",
    "position": "Backend Developer",
    "role": "Backend",
    "level": "Midweight",
    "contract": "Part Time",
    "location": "London",
    "skills": ["Python"]
  }
]`

func TestFetchFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", false)
	jobs, err := c.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, 1, jobs[0].ID)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.True(t, jobs[0].IsNew)
	assert.Equal(t, []string{"Python"}, jobs[1].Skills)
}

func TestFetchHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", false)
	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestFetchFromLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleFeed), 0644))

	c := NewClient(path, "", false)
	jobs, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestFetchMissingFile(t *testing.T) {
	c := NewClient(filepath.Join(t.TempDir(), "absent.json"), "", false)
	_, err := c.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchRejectsInvalidFeed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not an array", `{"id": 1}`},
		{"missing required field", `[{"id": 1, "company": "Acme"}]`},
		{"wrong id type", `[{"id": "1", "company": "Acme", "position": "Dev", "role": "Backend", "level": "Junior", "contract": "Full Time", "location": "Remote", "skills": []}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			c := NewClient(path, "", false)
			_, err := c.Fetch(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain passthrough", "  Just a sentence.  ", "Just a sentence."},
		{"paragraphs", "<p>First.</p><p>Second.</p>", "First.\nSecond."},
		{"headings and lists", "<h2>Duties</h2><ul><li>Build</li><li>Ship</li></ul>", "Duties\nBuild\nShip"},
		{"bare markup", "<div>Inline only</div>", "Inline only"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
